// Package i18n resolves the request language and localizes chrome copy.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "showcase_lang"

	langCookieMaxAge = 365 * 24 * time.Hour
)

// Localizer provides translated strings for templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

var supported = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	result := make([]language.Tag, len(supported))
	copy(result, supported)
	return result
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Match returns the supported tag closest to the preferred tags.
func Match(preferred ...language.Tag) language.Tag {
	if len(preferred) == 0 {
		return Default()
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return Default()
	}
	return supported[index]
}

// Parse parses value and reports whether it maps to a supported language.
func Parse(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, false
	}
	return supported[index], true
}

// Printer returns a message printer for tag backed by the site catalog.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Match(tag), message.Catalog(siteCatalog))
}

// ResolveTag determines the best language tag for the request.
// The bool reports whether the lang query param should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	return ResolveTagWithFallback(r, Default())
}

// ResolveTagWithFallback is ResolveTag with a configurable last resort.
func ResolveTagWithFallback(r *http.Request, fallback language.Tag) (language.Tag, bool) {
	if r == nil {
		return fallback, false
	}
	if r.URL != nil {
		if tag, ok := Parse(r.URL.Query().Get(LangParam)); ok {
			return tag, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := Parse(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return Match(tags...), false
		}
	}
	return fallback, false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int(langCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Resolver resolves localizers with a configured default language.
type Resolver struct {
	Fallback language.Tag
}

// Resolve returns the localizer and language tag string for r, persisting
// an explicit lang query selection.
func (res Resolver) Resolve(w http.ResponseWriter, r *http.Request) (Localizer, string) {
	fallback := res.Fallback
	if fallback == language.Und {
		fallback = Default()
	}
	tag, persist := ResolveTagWithFallback(r, fallback)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag.String()
}

// Localizer returns the localizer for r without persisting anything.
func (res Resolver) Localizer(r *http.Request) (Localizer, string) {
	fallback := res.Fallback
	if fallback == language.Und {
		fallback = Default()
	}
	tag, _ := ResolveTagWithFallback(r, fallback)
	return Printer(tag), tag.String()
}
