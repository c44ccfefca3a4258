package render

import (
	"net/http"
	"strings"
)

// ThemeCookie is the persisted client-side preference key.
const ThemeCookie = "theme"

// Theme is the resolved dark/light preference injected into the layout.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

// ParseTheme maps a persisted preference value to a Theme. An unset or
// unknown value defaults to dark.
func ParseTheme(pref string) Theme {
	if strings.EqualFold(strings.TrimSpace(pref), "light") {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeFromRequest reads the preference cookie once per request.
func ThemeFromRequest(req *http.Request) Theme {
	cookie, err := req.Cookie(ThemeCookie)
	if err != nil {
		return ThemeDark
	}
	return ParseTheme(cookie.Value)
}

// Class returns the CSS class the layout applies to the document root.
func (t Theme) Class() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

func (t Theme) String() string {
	return t.Class()
}
