package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/pgavlin/themekit/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testdataPath = filepath.Join("..", "..", "internal", "testdata")

func run(t *testing.T, registry *theme.Registry, args ...string) (string, error) {
	cmd := newCommand(registry)

	var stdout bytes.Buffer
	cmd.Writer = &stdout
	cmd.ErrWriter = io.Discard

	err := cmd.Run(context.Background(), append([]string{"themecat"}, args...))
	return stdout.String(), err
}

func TestResolve(t *testing.T) {
	out, err := run(t, theme.Default, "resolve", "Comment", "Str::Other", "Generic", "Str::Double")
	require.NoError(t, err)
	assert.Equal(t, "Comment\titalic #666666\n"+
		"Literal.String.Other\t#808000\n"+
		"Generic\t#000000 bg:#ffffff\n"+
		"Literal.String.Double\t#000000 bg:#ffffff\n", out)

	out, err = run(t, theme.Default, "resolve", "--hierarchical", "Str::Double")
	require.NoError(t, err)
	assert.Equal(t, "Literal.String.Double\t#808000\n", out)
}

func TestResolveUnknownTheme(t *testing.T) {
	_, err := run(t, theme.Default, "--theme", "no-such-theme", "resolve", "Comment")
	assert.True(t, errors.Is(err, theme.ErrUnknownTheme))
}

func TestList(t *testing.T) {
	out, err := run(t, theme.Default, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "custom\tpastie\n")
	assert.Contains(t, out, "pastie\t-\n")
	assert.Contains(t, out, "pulumi\t-\n")
}

func TestThemesFile(t *testing.T) {
	registry := theme.NewRegistry()
	_, err := registry.Import(styles.Get("pastie"))
	require.NoError(t, err)

	out, err := run(t, registry, "--themes", filepath.Join(testdataPath, "custom.toml"), "--theme", "custom-dim", "resolve", "Comment", "Keyword")
	require.NoError(t, err)
	assert.Equal(t, "Comment\titalic #aaaaaa\nKeyword\tbold #000080\n", out)

	// The file's themes are already registered in this registry.
	_, err = run(t, registry, "--themes", filepath.Join(testdataPath, "custom.toml"), "list")
	assert.True(t, errors.Is(err, theme.ErrThemeExists))
}

func TestHighlight(t *testing.T) {
	path := filepath.Join(testdataPath, "sample.go")

	out, err := run(t, theme.Default, "highlight", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "package sample"))

	out, err = run(t, theme.Default, "highlight", "--formatter", "terminal16m", path)
	require.NoError(t, err)
	assert.Contains(t, out, "\033[38;2;0;0;128mpackage")

	_, err = run(t, theme.Default, "highlight")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	out, err := run(t, theme.Default, "export")
	require.NoError(t, err)
	assert.Contains(t, out, `name = "custom"`)
	assert.Contains(t, out, `parent = "pastie"`)
	assert.Contains(t, out, `category = "Keyword.Type"`)

	out, err = run(t, theme.Default, "export", "--format", "xml")
	require.NoError(t, err)
	assert.Contains(t, out, `<style name="custom">`)
	assert.Contains(t, out, `<entry type="Comment" style="nobold italic nounderline #666666"></entry>`)

	out, err = run(t, theme.Default, "export", "--format", "css")
	require.NoError(t, err)
	assert.Contains(t, out, "#808000")

	_, err = run(t, theme.Default, "export", "--format", "yaml")
	assert.Error(t, err)
}

func TestShow(t *testing.T) {
	out, err := run(t, theme.Default, "show", "Keyword")
	require.NoError(t, err)
	assert.Contains(t, out, "Keyword")
	assert.Contains(t, out, "#000080")
}

func TestMarkdown(t *testing.T) {
	out, err := run(t, theme.Default, "markdown", "--width", "60", filepath.Join(testdataPath, "sample.md"))
	require.NoError(t, err)
	assert.Contains(t, out, "answer")
}
