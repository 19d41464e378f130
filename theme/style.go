package theme

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
)

// A Style describes how tokens of a category are displayed. Colors are hex RGB strings
// ("#808000"); an empty color leaves the choice to the renderer.
type Style struct {
	Foreground string
	Background string
	Bold       bool
	Italic     bool
	Underline  bool
}

// ParseStyle parses a Pygments-style entry such as "bold #000080" or "#dd2200 bg:#fff0f0".
func ParseStyle(entry string) (Style, error) {
	e, err := chroma.ParseStyleEntry(entry)
	if err != nil {
		return Style{}, err
	}
	return styleOf(e), nil
}

func MustParseStyle(entry string) Style {
	s, err := ParseStyle(entry)
	if err != nil {
		panic(err)
	}
	return s
}

func styleOf(e chroma.StyleEntry) Style {
	s := Style{
		Bold:      e.Bold == chroma.Yes,
		Italic:    e.Italic == chroma.Yes,
		Underline: e.Underline == chroma.Yes,
	}
	if e.Colour.IsSet() {
		s.Foreground = e.Colour.String()
	}
	if e.Background.IsSet() {
		s.Background = e.Background.String()
	}
	return s
}

func (s Style) IsZero() bool {
	return s == Style{}
}

// Entry converts the style to a chroma entry. Every attribute is explicit, so the entry never
// inherits bold, italic or underline from a more general token type. Colors chroma cannot parse
// are left unset.
func (s Style) Entry() chroma.StyleEntry {
	e := chroma.StyleEntry{
		Bold:      trilean(s.Bold),
		Italic:    trilean(s.Italic),
		Underline: trilean(s.Underline),
	}
	if s.Foreground != "" {
		e.Colour = chroma.ParseColour(s.Foreground)
	}
	if s.Background != "" {
		e.Background = chroma.ParseColour(s.Background)
	}
	return e
}

func trilean(v bool) chroma.Trilean {
	if v {
		return chroma.Yes
	}
	return chroma.No
}

// String renders the style in the syntax accepted by ParseStyle.
func (s Style) String() string {
	var parts []string
	if s.Bold {
		parts = append(parts, "bold")
	}
	if s.Italic {
		parts = append(parts, "italic")
	}
	if s.Underline {
		parts = append(parts, "underline")
	}
	if s.Foreground != "" {
		parts = append(parts, s.Foreground)
	}
	if s.Background != "" {
		parts = append(parts, "bg:"+s.Background)
	}
	return strings.Join(parts, " ")
}
