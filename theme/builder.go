package theme

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
)

// A Builder collects the style overrides of a theme under construction. Builders are returned
// by Registry.Define; the theme becomes visible to the registry only when Build succeeds.
type Builder struct {
	registry *Registry
	name     string
	parent   *Theme
	styles   map[Category]Style
	order    []Category
	err      error
}

func (b *Builder) Name() string {
	return b.name
}

// SetStyle records the style for a category. Setting a category again replaces the earlier
// style. Colors are stored in lower-case #rrggbb form; colors that cannot be parsed are
// reported by Build.
func (b *Builder) SetStyle(c Category, s Style) *Builder {
	var err error
	if s.Foreground, err = normalizeColor(s.Foreground); err != nil {
		return b.fail(c, err)
	}
	if s.Background, err = normalizeColor(s.Background); err != nil {
		return b.fail(c, err)
	}

	if _, ok := b.styles[c]; !ok {
		b.order = append(b.order, c)
	}
	b.styles[c] = s
	return b
}

// Set parses a Pygments-style entry and records it for a category. Parse failures are
// reported by Build.
func (b *Builder) Set(c Category, entry string) *Builder {
	s, err := ParseStyle(entry)
	if err != nil {
		return b.fail(c, err)
	}
	return b.SetStyle(c, s)
}

func (b *Builder) fail(c Category, err error) *Builder {
	if b.err == nil {
		b.err = fmt.Errorf("theme %q: invalid entry for %s: %w", b.name, c, err)
	}
	return b
}

func normalizeColor(color string) (string, error) {
	if color == "" {
		return "", nil
	}
	c := chroma.ParseColour(color)
	if !c.IsSet() {
		return "", fmt.Errorf("invalid color %q", color)
	}
	return c.String(), nil
}

// Build freezes the theme and adds it to the registry.
func (b *Builder) Build() (*Theme, error) {
	if b.err != nil {
		return nil, b.err
	}

	t := &Theme{
		name:   b.name,
		parent: b.parent,
		styles: make(map[Category]Style, len(b.styles)),
		order:  append([]Category(nil), b.order...),
	}
	for c, s := range b.styles {
		t.styles[c] = s
	}

	if b.parent != nil {
		t.baseline = b.parent.baseline
	} else if baseline, ok := baselineOf(t.styles); ok {
		t.baseline = baseline
	} else {
		t.baseline = b.registry.baseline
	}

	if err := b.registry.add(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (b *Builder) MustBuild() *Theme {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
