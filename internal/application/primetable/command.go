package primetable

import (
	"github.com/es-debug/prime-table/internal/render"
	"github.com/spf13/cobra"
)

// newRootCommand takes exactly "<mode> <path>". Flag parsing is off so that
// every argument, including ones starting with "-", counts as positional.
func newRootCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "primetable (html|py) <path>",
		Short: "Render a data file of primes as an HTML table or an array literal",
		Long: "primetable parses a data file listing ascending primes and prints the primes\n" +
			"greater than 2 and less than 2048 either as an HTML table (html) or as an\n" +
			"array literal (py).",
		Args:               validateArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd.OutOrStdout(), newParams(args))
		},
	}
}

func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return ErrArgCount{Count: len(args)}
	}

	if _, ok := render.ParseFormat(args[0]); !ok {
		return ErrUnknownMode{Mode: args[0]}
	}

	return nil
}
