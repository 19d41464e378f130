package preview

import (
	"fmt"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"
	glamour_styles "github.com/charmbracelet/glamour/styles"
)

// Markdown renders a Markdown document for a true-color terminal, highlighting its code blocks
// with the named chroma style. Themes become chroma styles through theme.RegisterChroma.
func Markdown(source []byte, style string, width int) ([]byte, error) {
	if _, ok := styles.Registry[style]; !ok {
		return nil, fmt.Errorf("no chroma style named %q", style)
	}

	config := glamour_styles.LightStyleConfig
	config.CodeBlock.Theme = style
	config.CodeBlock.Chroma = nil

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(config),
		glamour.WithWordWrap(width),
		glamour.WithChromaFormatter("terminal16m"))
	if err != nil {
		return nil, err
	}
	return r.RenderBytes(source)
}
