// Package preview shows themes on a terminal: as a list of styled category swatches, or applied
// to the code blocks of a Markdown document.
package preview

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/pgavlin/themekit/theme"
)

func lipglossStyle(s theme.Style) lipgloss.Style {
	style := lipgloss.NewStyle().
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underline)
	if s.Foreground != "" {
		style = style.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		style = style.Background(lipgloss.Color(s.Background))
	}
	return style
}

// Swatches writes one line per category: the category name, then its resolved style rendered in
// that style. If categories is empty, every category known to the theme's chain is listed.
// Colors are downsampled to what w supports.
func Swatches(w io.Writer, t *theme.Theme, categories []theme.Category) error {
	if len(categories) == 0 {
		categories = t.AllCategories()
	}

	width := 0
	for _, c := range categories {
		if len(c) > width {
			width = len(c)
		}
	}

	for _, c := range categories {
		s := t.Resolve(c)
		label := s.String()
		if label == "" {
			label = "(default)"
		}
		line := fmt.Sprintf("%-*s  %s", width, c, lipglossStyle(s).Render(label))
		if _, err := lipgloss.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
