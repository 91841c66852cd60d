package primetable

import "github.com/es-debug/prime-table/internal/render"

const (
	ExitSuccess = 0
	ExitFailure = 1
)

type Params struct {
	Format render.Format
	Path   string
}

func newParams(args []string) Params {
	format, _ := render.ParseFormat(args[0])

	return Params{
		Format: format,
		Path:   args[1],
	}
}
