package styles

import "github.com/pgavlin/themekit/theme"

// Custom is pastie with olive strings, navy keywords and constants, and grey italic comments.
var Custom = register(define("custom", "pastie").
	Set(theme.Comment, "#666666 italic").
	Set(theme.LiteralString, "#808000").
	Set(theme.LiteralStringEscape, "#808000").
	Set(theme.LiteralStringInterpol, "#808000").
	Set(theme.LiteralStringOther, "#808000").
	Set(theme.NameConstant, "#000080").
	Set(theme.Keyword, "#000080 bold").
	Set(theme.KeywordType, "#80604D bold").
	Set(theme.OperatorWord, "#008800 bold").
	Set(theme.LiteralNumber, "#B400B4").
	MustBuild())
