// Package theme holds syntax-highlighting themes as tables of per-category style overrides.
//
// A Theme maps token categories to Styles and names an optional parent theme that supplies a
// Style for every category the theme does not override. Themes are built once, registered in
// a Registry, and never modified afterwards, so they may be read from any number of goroutines
// without synchronization.
package theme

import (
	"sort"

	"github.com/alecthomas/chroma/v2"
)

// A Theme is an immutable table of style overrides with an optional parent.
type Theme struct {
	name     string
	parent   *Theme
	styles   map[Category]Style
	order    []Category
	baseline Style
}

func (t *Theme) Name() string {
	return t.name
}

// Parent returns the theme's parent, or nil for a root theme.
func (t *Theme) Parent() *Theme {
	return t.parent
}

// Lookup returns the theme's own style for a category. Parents are not consulted.
func (t *Theme) Lookup(c Category) (Style, bool) {
	s, ok := t.styles[c]
	return s, ok
}

// Categories returns the categories the theme itself overrides, in the order they were first
// set.
func (t *Theme) Categories() []Category {
	return append([]Category(nil), t.order...)
}

// AllCategories returns every category overridden by the theme or one of its ancestors,
// sorted.
func (t *Theme) AllCategories() []Category {
	seen := map[Category]bool{}
	var out []Category
	for th := t; th != nil; th = th.parent {
		for _, c := range th.order {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Baseline returns the style used for categories that no theme in the chain defines. A root
// theme takes its baseline from its own Text and Background entries, falling back to the
// registry's; other themes share the baseline of their root.
func (t *Theme) Baseline() Style {
	return t.baseline
}

// Resolve returns the effective style for a category: the theme's own style if it has one,
// otherwise the nearest ancestor's, otherwise the root's baseline. Categories are matched exactly;
// "Literal.String.Escape" does not fall back to "Literal.String".
func (t *Theme) Resolve(c Category) Style {
	if s, ok := t.lookupChain(c); ok {
		return s
	}
	return t.baseline
}

// ResolveHierarchical is like Resolve, but if no theme in the chain defines the category it
// retries with the category's parent ("Literal.String" for "Literal.String.Escape") before
// returning the baseline.
func (t *Theme) ResolveHierarchical(c Category) Style {
	for ; c != ""; c = c.Parent() {
		if s, ok := t.lookupChain(c); ok {
			return s
		}
	}
	return t.baseline
}

func (t *Theme) lookupChain(c Category) (Style, bool) {
	for th := t; th != nil; th = th.parent {
		if s, ok := th.styles[c]; ok {
			return s, true
		}
	}
	return Style{}, false
}

// baselineOf derives a root theme's baseline from its Text and Background entries. If only a
// background is known, the text color is black or white, whichever contrasts with it.
func baselineOf(styles map[Category]Style) (Style, bool) {
	text, hasText := styles[Text]
	bg, hasBackground := styles[Background]
	if !hasText && !hasBackground {
		return Style{}, false
	}

	s := text
	if s.Background == "" {
		s.Background = bg.Background
	}
	if s.Foreground == "" && s.Background != "" {
		s.Foreground = "#ffffff"
		if chroma.ParseColour(s.Background).Brightness() > 0.5 {
			s.Foreground = "#000000"
		}
	}
	return s, true
}
