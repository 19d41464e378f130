package styles

import "github.com/pgavlin/themekit/theme"

var Pulumi = register(theme.Default.MustDefine("pulumi", "", theme.Entries{
	theme.Text:                "#d7d7d7",
	theme.Error:               "#d75f5f",
	theme.Comment:             "#afafaf",
	theme.Keyword:             "#af87af",
	theme.Operator:            "#5fafd7",
	theme.Punctuation:         "#d7afff",
	theme.Name:                "#d7d7d7",
	theme.NameAttribute:       "#d7d7d7",
	theme.NameClass:           "#d7d7d7",
	theme.NameConstant:        "#d7d7d7",
	theme.NameDecorator:       "#d7d7d7",
	theme.NameException:       "#d7d7d7",
	theme.NameFunction:        "#d7d7d7",
	theme.NameOther:           "#d7d7d7",
	theme.NameTag:             "#d7d7d7",
	theme.LiteralNumber:       "#87ffaf",
	theme.Literal:             "#00d7af",
	theme.LiteralDate:         "#00d7af",
	theme.LiteralString:       "#ffaf5f",
	theme.LiteralStringEscape: "#5f5f87",
	theme.GenericDeleted:      "#d75f5f",
	theme.GenericEmph:         "italic",
	theme.GenericHeading:      "#d787af bold",
	theme.GenericInserted:     "#5f875f",
	theme.GenericStrong:       "bold",
	theme.GenericSubheading:   "#d787af",
	theme.GenericUnderline:    "underline",
	theme.Background:          "bg:#121212",
}))
