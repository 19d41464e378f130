package preview

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/pgavlin/themekit/styles"
	"github.com/pgavlin/themekit/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwatches(t *testing.T) {
	var buf bytes.Buffer
	err := Swatches(&buf, styles.Custom, []theme.Category{theme.Comment, theme.KeywordType, theme.Generic})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(ansi.Strip(buf.String()), "\n"), "\n")
	assert.Equal(t, []string{
		"Comment       italic #666666",
		"Keyword.Type  bold #80604d",
		"Generic       #000000 bg:#ffffff",
	}, lines)
}

func TestSwatchesWithoutBaseline(t *testing.T) {
	bare := theme.NewRegistry().MustDefine("bare", "", theme.Entries{theme.Keyword: "bold"})

	var buf bytes.Buffer
	require.NoError(t, Swatches(&buf, bare, []theme.Category{theme.Keyword, theme.Generic}))

	lines := strings.Split(strings.TrimSuffix(ansi.Strip(buf.String()), "\n"), "\n")
	assert.Equal(t, []string{
		"Keyword  bold",
		"Generic  (default)",
	}, lines)
}

func TestSwatchesAllCategories(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Swatches(&buf, styles.Custom, nil))

	out := ansi.Strip(buf.String())
	assert.Equal(t, len(styles.Custom.AllCategories()), strings.Count(out, "\n"))
	assert.Contains(t, out, "Name.Builtin")
	assert.Contains(t, out, "#003388")
}

func TestMarkdown(t *testing.T) {
	source, err := os.ReadFile(filepath.Join("..", "internal", "testdata", "sample.md"))
	require.NoError(t, err)

	out, err := Markdown(source, styles.Custom.Name(), 80)
	require.NoError(t, err)
	assert.Contains(t, string(out), "38;2;180;0;180m")
	assert.Contains(t, ansi.Strip(string(out)), "answer")
}

func TestMarkdownUnknownStyle(t *testing.T) {
	_, err := Markdown([]byte("# hi\n"), "no-such-style", 80)
	assert.Error(t, err)
}
