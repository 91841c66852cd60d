package main

import (
	"context"
	"os"

	"github.com/es-debug/prime-table/internal/application/primetable"
)

func main() {
	err := primetable.Start(context.Background(), os.Args[1:], os.Getenv, os.Stdout, os.Stderr)
	if err != nil {
		os.Exit(primetable.ExitFailure)
	}
}
