package main

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/pgavlin/themekit/highlight"
	"github.com/pgavlin/themekit/preview"
	"github.com/pgavlin/themekit/theme"
	"github.com/pgavlin/themekit/themefile"
	"github.com/urfave/cli/v3"
)

func (a *app) highlightCommand() *cli.Command {
	return &cli.Command{
		Name:      "highlight",
		Usage:     "highlight a source file",
		ArgsUsage: "[path to source file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "formatter",
				Aliases: []string{"f"},
				Usage:   "the chroma formatter (default: terminal16m on a terminal, noop otherwise)",
			},
			&cli.StringFlag{
				Name:    "lexer",
				Aliases: []string{"l"},
				Usage:   "the chroma lexer (default: chosen by filename or content)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one source file")
			}
			path := cmd.Args().First()

			t, err := a.theme(cmd)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			formatter := cmd.String("formatter")
			if formatter == "" {
				formatter = "noop"
				if isTerminal(w) {
					formatter = "terminal16m"
				}
			}

			source, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("error opening %v: %w", path, err)
			}

			h, err := highlight.New(
				highlight.WithTheme(t),
				highlight.WithFormatter(formatter),
				highlight.WithLexer(cmd.String("lexer")),
				highlight.WithFilename(path))
			if err != nil {
				return err
			}
			a.logger.Debug().Str("theme", t.Name()).Str("formatter", formatter).Str("path", path).Msg("highlighting")
			return h.Highlight(w, string(source))
		},
	}
}

func (a *app) resolveCommand() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "print the effective style of each category",
		ArgsUsage: "[category...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "hierarchical",
				Usage: "fall back to less specific categories before the baseline",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			t, err := a.theme(cmd)
			if err != nil {
				return err
			}

			resolve := t.Resolve
			if cmd.Bool("hierarchical") {
				resolve = t.ResolveHierarchical
			}
			for _, arg := range cmd.Args().Slice() {
				c := theme.ParseCategory(arg)
				if _, err := fmt.Fprintf(cmd.Root().Writer, "%v\t%v\n", c, resolve(c)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list registered themes and their parents",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, name := range a.registry.Names() {
				t, _ := a.registry.Get(name)
				parent := "-"
				if p := t.Parent(); p != nil {
					parent = p.Name()
				}
				if _, err := fmt.Fprintf(cmd.Root().Writer, "%v\t%v\n", name, parent); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "show the theme's styles as swatches",
		ArgsUsage: "[category...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			t, err := a.theme(cmd)
			if err != nil {
				return err
			}

			var categories []theme.Category
			for _, arg := range cmd.Args().Slice() {
				categories = append(categories, theme.ParseCategory(arg))
			}
			return preview.Swatches(cmd.Root().Writer, t, categories)
		},
	}
}

func (a *app) exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write the theme as TOML, as a chroma XML style, or as CSS",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Value: "toml",
				Usage: "one of toml, xml, or css",
			},
			&cli.BoolFlag{
				Name:  "clipboard",
				Usage: "copy the output to the system clipboard instead of printing it",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			t, err := a.theme(cmd)
			if err != nil {
				return err
			}

			if !cmd.Bool("clipboard") {
				return export(cmd.Root().Writer, t, cmd.String("format"))
			}

			var buf bytes.Buffer
			if err := export(&buf, t, cmd.String("format")); err != nil {
				return err
			}
			return clipboard.WriteAll(buf.String())
		},
	}
}

func export(w io.Writer, t *theme.Theme, format string) error {
	switch format {
	case "toml":
		return themefile.Encode(w, t)
	case "xml":
		style, err := t.Chroma()
		if err != nil {
			return err
		}
		data, err := xml.MarshalIndent(style, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "css":
		h, err := highlight.New(highlight.WithTheme(t))
		if err != nil {
			return err
		}
		return h.WriteCSS(w)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func (a *app) markdownCommand() *cli.Command {
	return &cli.Command{
		Name:      "markdown",
		Usage:     "render a Markdown file, highlighting code blocks with the theme",
		ArgsUsage: "[path to Markdown file]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"w"},
				Usage:   "the maximum line width for wrappable content (default: terminal width)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one Markdown file")
			}
			path := cmd.Args().First()

			t, err := a.theme(cmd)
			if err != nil {
				return err
			}

			source, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("error opening %v: %w", path, err)
			}

			w := cmd.Root().Writer
			width := cmd.Int("width")
			if width == 0 {
				width = terminalWidth(w)
			}

			out, err := preview.Markdown(source, t.Name(), width)
			if err != nil {
				return err
			}
			_, err = w.Write(out)
			return err
		},
	}
}
