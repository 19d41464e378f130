package theme

import (
	"encoding/xml"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

type xmlStyle struct {
	Name    string     `xml:"name,attr"`
	Entries []xmlEntry `xml:"entry"`
}

type xmlEntry struct {
	Type  string `xml:"type,attr"`
	Style string `xml:"style,attr"`
}

// FromChroma returns a root theme holding the entries a chroma style defines itself. Chroma only
// exposes a style's own entries through its XML form, so the style is round-tripped through
// that; styles built on top of another style cannot be converted.
//
// Each entry is resolved against the style's entries for its token category and subcategory the
// way chroma does when rendering, so KeywordType in a style whose Keyword is bold is bold too.
// The Text and Background entries supply the theme's baseline.
func FromChroma(style *chroma.Style) (*Theme, error) {
	data, err := xml.Marshal(style)
	if err != nil {
		return nil, fmt.Errorf("style %q: %w", style.Name, err)
	}

	var doc xmlStyle
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("style %q: %w", style.Name, err)
	}

	types := make([]chroma.TokenType, 0, len(doc.Entries))
	entries := map[chroma.TokenType]chroma.StyleEntry{}
	for _, e := range doc.Entries {
		tt, err := chroma.TokenTypeString(e.Type)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", style.Name, err)
		}
		entry, err := chroma.ParseStyleEntry(e.Style)
		if err != nil {
			return nil, fmt.Errorf("style %q: invalid entry for %s: %w", style.Name, e.Type, err)
		}
		if _, ok := entries[tt]; !ok {
			types = append(types, tt)
		}
		entries[tt] = entry
	}

	t := &Theme{name: style.Name, styles: map[Category]Style{}}
	for _, tt := range types {
		entry := entries[tt]
		if tt >= 0 {
			entry = entry.Inherit(entries[tt.Category()], entries[tt.SubCategory()])
		}

		c := CategoryOf(tt)
		if _, ok := t.styles[c]; !ok {
			t.order = append(t.order, c)
		}
		t.styles[c] = styleOf(entry)
	}
	t.baseline, _ = baselineOf(t.styles)
	return t, nil
}

// Import converts a chroma style with FromChroma and registers the result as a root theme.
func (r *Registry) Import(style *chroma.Style) (*Theme, error) {
	t, err := FromChroma(style)
	if err != nil {
		return nil, err
	}
	if t.baseline.IsZero() {
		t.baseline = r.baseline
	}
	if err := r.add(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Chroma flattens the theme and its ancestors into a standalone chroma style with the same
// name. Every category known to the chain gets an explicit entry holding its resolved style;
// chroma applies its own token hierarchy to everything else.
func (t *Theme) Chroma() (*chroma.Style, error) {
	b := chroma.NewStyleBuilder(t.name)
	for _, c := range t.AllCategories() {
		if tt, ok := c.TokenType(); ok {
			b.AddEntry(tt, t.Resolve(c).Entry())
		}
	}
	return b.Build()
}

// RegisterChroma flattens a theme and adds it to chroma's style registry, replacing any style
// of the same name. Like styles.Register, it must not race with chroma lookups.
func RegisterChroma(t *Theme) (*chroma.Style, error) {
	style, err := t.Chroma()
	if err != nil {
		return nil, err
	}
	return styles.Register(style), nil
}

func MustRegisterChroma(t *Theme) *chroma.Style {
	style, err := RegisterChroma(t)
	if err != nil {
		panic(err)
	}
	return style
}
