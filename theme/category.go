package theme

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
)

// A Category names a class of source tokens. Categories are written in dotted form, from the
// least to the most specific segment: "Literal.String.Escape" refines "Literal.String", which
// refines "Literal". Categories are compared by exact string equality.
type Category string

// Categories used by the themes in this module. Any other dotted name is equally valid.
const (
	Background Category = "Background"
	Error      Category = "Error"

	Text Category = "Text"

	Keyword     Category = "Keyword"
	KeywordType Category = "Keyword.Type"

	Name          Category = "Name"
	NameAttribute Category = "Name.Attribute"
	NameClass     Category = "Name.Class"
	NameConstant  Category = "Name.Constant"
	NameDecorator Category = "Name.Decorator"
	NameException Category = "Name.Exception"
	NameFunction  Category = "Name.Function"
	NameOther     Category = "Name.Other"
	NameTag       Category = "Name.Tag"

	Literal               Category = "Literal"
	LiteralDate           Category = "Literal.Date"
	LiteralString         Category = "Literal.String"
	LiteralStringEscape   Category = "Literal.String.Escape"
	LiteralStringInterpol Category = "Literal.String.Interpol"
	LiteralStringOther    Category = "Literal.String.Other"
	LiteralNumber         Category = "Literal.Number"

	Operator     Category = "Operator"
	OperatorWord Category = "Operator.Word"

	Punctuation Category = "Punctuation"

	Comment Category = "Comment"

	Generic           Category = "Generic"
	GenericDeleted    Category = "Generic.Deleted"
	GenericEmph       Category = "Generic.Emph"
	GenericHeading    Category = "Generic.Heading"
	GenericInserted   Category = "Generic.Inserted"
	GenericStrong     Category = "Generic.Strong"
	GenericSubheading Category = "Generic.Subheading"
	GenericUnderline  Category = "Generic.Underline"
)

// Short root names used by Rouge-style theme definitions.
var rootAliases = map[string]string{
	"Str": "Literal.String",
	"Num": "Literal.Number",
	"Lit": "Literal",
}

var tokenNames = func() map[string]chroma.TokenType {
	names := map[string]chroma.TokenType{}
	for _, tt := range chroma.TokenTypeValues() {
		names[tt.String()] = tt
	}
	return names
}()

var categoriesByType = func() map[chroma.TokenType]Category {
	categories := map[chroma.TokenType]Category{}
	for _, tt := range chroma.TokenTypeValues() {
		if tt != chroma.EOFType {
			categories[tt] = Category(strings.Join(segments(tt.String()), "."))
		}
	}
	return categories
}()

var tokenCategories = func() map[Category]chroma.TokenType {
	types := map[Category]chroma.TokenType{}
	for tt, c := range categoriesByType {
		types[c] = tt
	}
	return types
}()

// segments splits a chroma token name into its dotted segments by repeatedly peeling off the
// longest proper prefix that is itself a token name.
func segments(name string) []string {
	if tokenNames[name] < 0 {
		return []string{name}
	}
	for i := len(name) - 1; i > 0; i-- {
		if _, ok := tokenNames[name[:i]]; ok {
			return append(segments(name[:i]), name[i:])
		}
	}
	return []string{name}
}

// ParseCategory normalizes a category name. It accepts dotted names ("Literal.String"),
// Rouge-style names ("Str::Escape", "Num"), and chroma token names ("LiteralStringEscape").
// Names it does not recognize are returned unchanged.
func ParseCategory(name string) Category {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	parts := strings.Split(strings.ReplaceAll(name, "::", "."), ".")
	if alias, ok := rootAliases[parts[0]]; ok {
		parts[0] = alias
	}
	if len(parts) == 1 {
		if tt, ok := tokenNames[parts[0]]; ok {
			return categoriesByType[tt]
		}
	}
	return Category(strings.Join(parts, "."))
}

// CategoryOf returns the category for a chroma token type.
func CategoryOf(tt chroma.TokenType) Category {
	if c, ok := categoriesByType[tt]; ok {
		return c
	}
	return Category(tt.String())
}

// TokenType returns the chroma token type for the category, if chroma has one.
func (c Category) TokenType() (chroma.TokenType, bool) {
	tt, ok := tokenCategories[c]
	return tt, ok
}

// Parent returns the category that c refines, or the empty category if c is a root.
func (c Category) Parent() Category {
	if i := strings.LastIndexByte(string(c), '.'); i >= 0 {
		return c[:i]
	}
	return ""
}

func (c Category) String() string {
	return string(c)
}
