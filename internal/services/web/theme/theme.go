// Package theme models the light/dark flag and its document markers.
package theme

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/louisbranch/showcase/internal/services/web/platform/requestmeta"
)

// Theme is the document color mode.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// CookieName stores the last selected theme.
const CookieName = "showcase_theme"

const cookieMaxAge = 365 * 24 * time.Hour

// Parse maps a marker or cookie value to a theme.
func Parse(value string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return "", false
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// ColorScheme is the CSS color-scheme value for t.
func (t Theme) ColorScheme() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Markers is the class list and color-scheme a document carries.
type Markers struct {
	Classes     []string `json:"classes"`
	ColorScheme string   `json:"colorScheme"`
}

// ClassString joins the classes for an HTML class attribute.
func (m Markers) ClassString() string {
	return strings.Join(m.Classes, " ")
}

// Markers returns the markers for a document that carries only t.
func (t Theme) Markers() Markers {
	return t.Apply(nil)
}

// Apply rewrites classes so the theme marker is t. The first existing marker
// is replaced in place and any others are dropped; without one, t is
// appended.
func (t Theme) Apply(classes []string) Markers {
	if _, ok := Parse(string(t)); !ok {
		t = Light
	}
	result := make([]string, 0, len(classes)+1)
	replaced := false
	for _, class := range classes {
		if _, ok := Parse(class); ok {
			if !replaced {
				result = append(result, string(t))
				replaced = true
			}
			continue
		}
		result = append(result, class)
	}
	if !replaced {
		result = append(result, string(t))
	}
	return Markers{Classes: result, ColorScheme: t.ColorScheme()}
}

// SplitClasses splits a class attribute value.
func SplitClasses(raw string) []string {
	return strings.Fields(raw)
}

// FromMarkers reads the theme from a class list. Dark wins when both markers
// are present.
func FromMarkers(classes []string) (Theme, bool) {
	normalized := make([]string, 0, len(classes))
	for _, class := range classes {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(class)))
	}
	if slices.Contains(normalized, string(Dark)) {
		return Dark, true
	}
	if slices.Contains(normalized, string(Light)) {
		return Light, true
	}
	return "", false
}

// FromRequest reads the theme cookie, defaulting to light.
func FromRequest(r *http.Request) Theme {
	if r == nil {
		return Light
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return Light
	}
	if t, ok := Parse(cookie.Value); ok {
		return t
	}
	return Light
}

// Current resolves the theme a toggle starts from: the reported class
// markers first, then the cookie.
func Current(r *http.Request, classes []string) Theme {
	if t, ok := FromMarkers(classes); ok {
		return t
	}
	return FromRequest(r)
}

// WriteCookie persists t. The page script reads it, so it is not HttpOnly.
func WriteCookie(w http.ResponseWriter, r *http.Request, t Theme, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	if _, ok := Parse(string(t)); !ok {
		t = Light
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(t),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
}
