package render

import _ "embed"

//go:embed assets/site.css
var stylesheet []byte

// Stylesheet returns the site stylesheet served at /assets/site.css and
// copied into static exports.
func Stylesheet() []byte {
	return stylesheet
}
