package primetable

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/es-debug/prime-table/internal/config"
	"github.com/es-debug/prime-table/internal/logging"
	"github.com/es-debug/prime-table/internal/parser"
	"github.com/es-debug/prime-table/internal/render"
)

type application struct {
	parser *parser.Parser
	opts   render.Options
	logger *slog.Logger
}

// Start runs the tool with args excluding the program name. Any failure is
// reported as a single line on stdout and returned; the caller only has to
// set the exit status.
func Start(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(getenv)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %s\n", err)

		return fmt.Errorf("load config: %w", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %s\n", err)

		return fmt.Errorf("parse log level: %w", err)
	}

	logger := slog.New(logging.NewTerminalHandler(stderr, level))

	app := &application{
		parser: parser.NewParser(parser.WithLogger(logger)),
		opts: render.Options{
			Lower:   cfg.Lower,
			Upper:   cfg.Upper,
			Columns: cfg.Columns,
		},
		logger: logger,
	}

	// Cobra falls back to os.Args when args is nil.
	if args == nil {
		args = []string{}
	}

	cmd := newRootCommand(app)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	// Cobra routes its hidden completion request commands before Args runs,
	// so the argument shape is checked up front too.
	err = validateArgs(cmd, args)
	if err == nil {
		err = cmd.ExecuteContext(ctx)
	}

	if err != nil {
		fmt.Fprintln(stdout, message(err))

		var parseErr *parser.Error
		if errors.As(err, &parseErr) {
			logger.Debug("primetable failed", slog.String("detail", parseErr.Detail()))
		} else {
			logger.Debug("primetable failed", slog.Any("error", err))
		}

		return err
	}

	return nil
}

func (a *application) run(out io.Writer, params Params) error {
	a.logger.Debug("parsing data file", slog.String("path", params.Path), slog.String("mode", string(params.Format)))

	seq, err := a.parser.Parse(params.Path)
	if err != nil {
		return fmt.Errorf("parse %q: %w", params.Path, err)
	}

	if err := render.Render(out, params.Format, seq, a.opts); err != nil {
		var formatErr render.ErrUnknownFormat
		if errors.As(err, &formatErr) {
			return parser.NewError(parser.KindLogic, err)
		}

		return fmt.Errorf("render: %w", err)
	}

	if _, err := io.WriteString(out, "\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// message converts a failure into the line shown to the user.
func message(err error) string {
	var (
		parseErr *parser.Error
		countErr ErrArgCount
		modeErr  ErrUnknownMode
	)

	switch {
	case errors.As(err, &countErr):
		return countErr.Error()
	case errors.As(err, &modeErr):
		return modeErr.Error()
	case errors.As(err, &parseErr):
		return "Error: " + parseErr.Error()
	default:
		return "Error: " + err.Error()
	}
}
