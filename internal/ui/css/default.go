package css

import _ "embed"

//go:embed default.css
var defaultSource string

// Default returns the built-in overlay stylesheet.
func Default() *Stylesheet {
	sheet, err := Parse(defaultSource)
	if err != nil {
		return &Stylesheet{}
	}
	return sheet
}
