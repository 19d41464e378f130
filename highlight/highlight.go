// Package highlight feeds source text through chroma using a theme from the theme package.
package highlight

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/pgavlin/themekit/theme"
)

// A Highlighter renders source text with a fixed theme and formatter.
type Highlighter struct {
	theme         *theme.Theme
	formatterName string
	lexerName     string
	filename      string

	style     *chroma.Style
	formatter chroma.Formatter
}

type Option func(h *Highlighter)

// WithTheme sets the theme. Without a theme, chroma's fallback style is used.
func WithTheme(t *theme.Theme) Option {
	return func(h *Highlighter) {
		h.theme = t
	}
}

// WithFormatter selects a chroma formatter by name, e.g. "terminal16m" or "html". The default
// is "noop", which writes the source unchanged.
func WithFormatter(name string) Option {
	return func(h *Highlighter) {
		h.formatterName = name
	}
}

// WithLexer selects a chroma lexer by name or alias.
func WithLexer(name string) Option {
	return func(h *Highlighter) {
		h.lexerName = name
	}
}

// WithFilename selects a lexer by filename when no lexer is named.
func WithFilename(name string) Option {
	return func(h *Highlighter) {
		h.filename = name
	}
}

func New(options ...Option) (*Highlighter, error) {
	h := &Highlighter{formatterName: "noop"}
	for _, o := range options {
		o(h)
	}

	formatter, ok := formatters.Registry[h.formatterName]
	if !ok {
		return nil, fmt.Errorf("unknown formatter %q", h.formatterName)
	}
	h.formatter = formatter

	if h.theme == nil {
		h.style = styles.Fallback
	} else {
		style, err := h.theme.Chroma()
		if err != nil {
			return nil, err
		}
		h.style = style
	}

	if h.lexerName != "" && lexers.Get(h.lexerName) == nil {
		return nil, fmt.Errorf("unknown lexer %q", h.lexerName)
	}
	return h, nil
}

func (h *Highlighter) Style() *chroma.Style {
	return h.style
}

func (h *Highlighter) lexer(source string) chroma.Lexer {
	var lexer chroma.Lexer
	switch {
	case h.lexerName != "":
		lexer = lexers.Get(h.lexerName)
	case h.filename != "":
		lexer = lexers.Match(h.filename)
	}
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// Highlight tokenises source and writes it to w.
func (h *Highlighter) Highlight(w io.Writer, source string) error {
	iterator, err := h.lexer(source).Tokenise(nil, source)
	if err != nil {
		return err
	}
	return h.formatter.Format(w, h.style, iterator)
}

// WriteCSS writes the stylesheet used by chroma's HTML formatter in class mode.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	return html.New(html.WithClasses(true)).WriteCSS(w, h.style)
}
