package themefile

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/pgavlin/themekit/theme"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testdataPath = filepath.Join("..", "internal", "testdata")

func newRegistry(t *testing.T) *theme.Registry {
	r := theme.NewRegistry()
	_, err := r.Import(styles.Get("pastie"))
	require.NoError(t, err)
	return r
}

func TestLoad(t *testing.T) {
	r := newRegistry(t)

	var log bytes.Buffer
	themes, err := Load(r, filepath.Join(testdataPath, "custom.toml"), WithLogger(zerolog.New(&log)))
	require.NoError(t, err)
	require.Len(t, themes, 2)

	custom := themes[0]
	assert.Equal(t, "custom", custom.Name())
	assert.Equal(t, "pastie", custom.Parent().Name())
	assert.Equal(t, []theme.Category{
		theme.Comment,
		theme.LiteralString,
		theme.LiteralStringEscape,
		theme.LiteralStringInterpol,
		theme.LiteralStringOther,
		theme.NameConstant,
		theme.Keyword,
		theme.KeywordType,
		theme.OperatorWord,
		theme.LiteralNumber,
	}, custom.Categories())

	assert.Equal(t, theme.Style{Foreground: "#666666", Italic: true}, custom.Resolve(theme.Comment))
	assert.Equal(t, theme.Style{Foreground: "#80604d", Bold: true}, custom.Resolve(theme.KeywordType))
	assert.Equal(t, theme.Style{Foreground: "#808000"}, custom.Resolve(theme.LiteralStringOther))
	assert.Equal(t, theme.Style{Foreground: "#000000", Background: "#ffffff"}, custom.Resolve(theme.Generic))

	dim := themes[1]
	assert.Equal(t, theme.Style{Foreground: "#aaaaaa", Italic: true}, dim.Resolve(theme.Comment))
	assert.Equal(t, []theme.Category{theme.Comment}, dim.Categories())
	assert.Equal(t, custom.Resolve(theme.Keyword), dim.Resolve(theme.Keyword))

	assert.Contains(t, log.String(), `"theme":"custom-dim"`)
	assert.Contains(t, log.String(), `"message":"defined theme"`)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(newRegistry(t), filepath.Join(testdataPath, "missing.toml"))
	assert.Error(t, err)
}

func TestDecodeUnknownKey(t *testing.T) {
	_, err := Decode(strings.NewReader(`
[[theme]]
name = "x"
colour = "#ffffff"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme.colour")
}

func TestApplyUnknownParent(t *testing.T) {
	r := newRegistry(t)
	f, err := Decode(strings.NewReader(`
[[theme]]
name = "first"
parent = "pastie"

[[theme]]
name = "second"
parent = "nowhere"

[[theme]]
name = "third"
`))
	require.NoError(t, err)

	themes, err := Apply(r, f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, theme.ErrUnknownParent))

	// Themes before the failure stay registered; the failing theme and those after it do not.
	require.Len(t, themes, 1)
	assert.Equal(t, "first", themes[0].Name())
	assert.Equal(t, []string{"first", "pastie"}, r.Names())
}

func TestApplyInvalidDefinitions(t *testing.T) {
	r := newRegistry(t)

	_, err := Apply(r, &File{Themes: []Definition{{Parent: "pastie"}}})
	assert.Error(t, err)

	_, err = Apply(r, &File{Themes: []Definition{{
		Name:   "blank",
		Parent: "pastie",
		Styles: []Record{{Fg: "#ffffff"}},
	}}})
	assert.Error(t, err)
	_, ok := r.Get("blank")
	assert.False(t, ok)

	_, err = Apply(r, &File{Themes: []Definition{{
		Name:   "murky",
		Parent: "pastie",
		Styles: []Record{{Category: "Comment", Fg: "murky"}},
	}}})
	assert.Error(t, err)
	_, ok = r.Get("murky")
	assert.False(t, ok)
}

func TestEncode(t *testing.T) {
	r := newRegistry(t)
	themes, err := Load(r, filepath.Join(testdataPath, "custom.toml"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, themes...))

	// Reload under fresh names into a registry that only knows pastie.
	text := strings.NewReplacer(`"custom"`, `"copy"`, `"custom-dim"`, `"copy-dim"`).Replace(buf.String())
	f, err := Decode(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, f.Themes, 2)
	assert.Equal(t, "copy", f.Themes[1].Parent)

	copies, err := Apply(newRegistry(t), f)
	require.NoError(t, err)
	for i, original := range themes {
		assert.Equal(t, original.Categories(), copies[i].Categories())
		for _, c := range original.AllCategories() {
			assert.Equal(t, original.Resolve(c), copies[i].Resolve(c), "category %v", c)
		}
	}
}
