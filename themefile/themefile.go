// Package themefile reads and writes theme definitions as TOML.
//
// A file holds an ordered list of themes, each with an ordered list of style records:
//
//	[[theme]]
//	name = "custom"
//	parent = "pastie"
//
//	  [[theme.style]]
//	  category = "Comment"
//	  fg = "#666666"
//	  italic = true
//
// Categories may be written in any form accepted by theme.ParseCategory.
package themefile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pgavlin/themekit/theme"
	"github.com/rs/zerolog"
)

// A File is the decoded form of a theme file.
type File struct {
	Themes []Definition `toml:"theme"`
}

type Definition struct {
	Name   string   `toml:"name"`
	Parent string   `toml:"parent,omitempty"`
	Styles []Record `toml:"style"`
}

// A Record overrides the style of one category.
type Record struct {
	Category  string `toml:"category"`
	Fg        string `toml:"fg,omitempty"`
	Bg        string `toml:"bg,omitempty"`
	Bold      bool   `toml:"bold,omitempty"`
	Italic    bool   `toml:"italic,omitempty"`
	Underline bool   `toml:"underline,omitempty"`
}

func (r Record) Style() theme.Style {
	return theme.Style{
		Foreground: r.Fg,
		Background: r.Bg,
		Bold:       r.Bold,
		Italic:     r.Italic,
		Underline:  r.Underline,
	}
}

// Decode reads a theme file. Keys the format does not define are an error.
func Decode(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %v", strings.Join(keys, ", "))
	}
	return &f, nil
}

// Encode writes the given themes' own overrides, in the order they were set.
func Encode(w io.Writer, themes ...*theme.Theme) error {
	var f File
	for _, t := range themes {
		def := Definition{Name: t.Name()}
		if p := t.Parent(); p != nil {
			def.Parent = p.Name()
		}
		for _, c := range t.Categories() {
			s, _ := t.Lookup(c)
			def.Styles = append(def.Styles, Record{
				Category:  string(c),
				Fg:        s.Foreground,
				Bg:        s.Background,
				Bold:      s.Bold,
				Italic:    s.Italic,
				Underline: s.Underline,
			})
		}
		f.Themes = append(f.Themes, def)
	}
	return toml.NewEncoder(w).Encode(f)
}

type Option func(o *options)

type options struct {
	logger zerolog.Logger
}

// WithLogger sets the logger used to report each theme as it is defined.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Apply defines the file's themes in registry, in file order, so a theme may use any theme
// defined before it as a parent. Apply stops at the first theme that cannot be defined; themes
// before it remain registered.
func Apply(registry *theme.Registry, f *File, opts ...Option) ([]*theme.Theme, error) {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	themes := make([]*theme.Theme, 0, len(f.Themes))
	for i, def := range f.Themes {
		if def.Name == "" {
			return themes, fmt.Errorf("theme %d: missing name", i)
		}

		b, err := registry.Define(def.Name, def.Parent)
		if err != nil {
			return themes, err
		}
		for _, rec := range def.Styles {
			c := theme.ParseCategory(rec.Category)
			if c == "" {
				return themes, fmt.Errorf("theme %q: style record without a category", def.Name)
			}
			b.SetStyle(c, rec.Style())
		}

		t, err := b.Build()
		if err != nil {
			return themes, err
		}
		o.logger.Debug().
			Str("theme", def.Name).
			Str("parent", def.Parent).
			Int("styles", len(t.Categories())).
			Msg("defined theme")
		themes = append(themes, t)
	}
	return themes, nil
}

// Load reads the theme file at path and applies it to registry.
func Load(registry *theme.Registry, path string, opts ...Option) ([]*theme.Theme, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	f, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	themes, err := Apply(registry, f, opts...)
	if err != nil {
		return themes, fmt.Errorf("%v: %w", path, err)
	}
	return themes, nil
}
