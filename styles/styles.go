// Package styles defines the themes shipped with themekit. Each theme is registered with
// theme.Default and with chroma's style registry when the package is loaded, so it can be
// selected by name from either.
package styles

import "github.com/pgavlin/themekit/theme"

func define(name, parent string) *theme.Builder {
	b, err := theme.Default.Define(name, parent)
	if err != nil {
		panic(err)
	}
	return b
}

func register(t *theme.Theme) *theme.Theme {
	theme.MustRegisterChroma(t)
	return t
}
