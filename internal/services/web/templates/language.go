package templates

import (
	"net/url"
	"strings"

	webi18n "github.com/louisbranch/showcase/internal/services/web/platform/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// LanguageOptions lists supported languages, each labeled in its own
// language.
func LanguageOptions(page PageContext) []LanguageOption {
	active := webi18n.Match(normalizeTag(page.Lang))
	supported := webi18n.Supported()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  display.Self.Name(tag),
			URL:    LanguageURL(page, tag.String()),
			Active: tag == active,
		})
	}
	return options
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(page PageContext, tag string) string {
	path := strings.TrimSpace(page.CurrentPath)
	if path == "" {
		path = "/"
	}
	values, err := url.ParseQuery(page.CurrentQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set(webi18n.LangParam, tag)
	return path + "?" + values.Encode()
}

func normalizeTag(value string) language.Tag {
	if tag, ok := webi18n.Parse(value); ok {
		return tag
	}
	return webi18n.Default()
}
