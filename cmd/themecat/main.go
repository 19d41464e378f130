package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pgavlin/themekit/styles"
	"github.com/pgavlin/themekit/theme"
	"github.com/pgavlin/themekit/themefile"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

type app struct {
	registry *theme.Registry
	logger   zerolog.Logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			return width
		}
	}
	return 80
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := zerolog.InfoLevel
	if cmd.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.Root().ErrWriter}).
		Level(level).
		With().
		Timestamp().
		Logger()

	path := cmd.String("themes")
	if path == "" {
		return ctx, nil
	}
	themes, err := themefile.Load(a.registry, path, themefile.WithLogger(a.logger))
	if err != nil {
		return ctx, err
	}
	for _, t := range themes {
		if _, err := theme.RegisterChroma(t); err != nil {
			return ctx, fmt.Errorf("theme %q: %w", t.Name(), err)
		}
	}
	a.logger.Debug().Str("path", path).Int("themes", len(themes)).Msg("loaded theme file")
	return ctx, nil
}

func (a *app) theme(cmd *cli.Command) (*theme.Theme, error) {
	return a.registry.Lookup(cmd.String("theme"))
}

func newCommand(registry *theme.Registry) *cli.Command {
	a := &app{registry: registry, logger: zerolog.Nop()}

	return &cli.Command{
		Name:  filepath.Base(os.Args[0]),
		Usage: "inspect and apply syntax-highlighting themes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "theme",
				Aliases: []string{"t"},
				Value:   styles.Custom.Name(),
				Usage:   "the theme to use",
			},
			&cli.StringFlag{
				Name:  "themes",
				Usage: "a TOML file of additional themes",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug output",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.highlightCommand(),
			a.resolveCommand(),
			a.listCommand(),
			a.showCommand(),
			a.exportCommand(),
			a.markdownCommand(),
		},
	}
}

func main() {
	if err := newCommand(theme.Default).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}
