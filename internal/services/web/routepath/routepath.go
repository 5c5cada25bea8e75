// Package routepath stores canonical HTTP paths for the web service.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root           = "/"
	ProjectGallery = "/project-gallery"
	PageNotFound   = "/page-not-found"
	Health         = "/up"
	Metrics        = "/metrics"
	StaticPrefix   = "/static/"
	UIPrefix       = "/ui/"
	MenuPrefix     = "/ui/menu/"
	MenuHover      = "/ui/menu/hover"
	MenuLeave      = "/ui/menu/leave"
	MenuClick      = "/ui/menu/click"
	MenuOutside    = "/ui/menu/outside"
	Theme          = "/ui/theme"
	Donate         = "/ui/donate"

	EntryQueryKey    = "entry"
	RegionFormKey    = "region"
	ReturnToFormKey  = "return_to"
	ClassesFormKey   = "classes"
	LanguageQueryKey = "lang"
)

// Docs paths are external to this service; the navigation links to them as
// plain anchors.
const (
	DocsIntroduction = "/docs"
	DocsInstallation = "/docs/installation"
	DocsTypography   = "/docs/primitives/typography"
	DocsPrimitives   = "/docs/primitives/"
)

// MenuHoverFor returns the hover endpoint for entryID.
func MenuHoverFor(entryID string) string {
	return withEntry(MenuHover, entryID)
}

// MenuClickFor returns the click endpoint for entryID.
func MenuClickFor(entryID string) string {
	return withEntry(MenuClick, entryID)
}

// DocsPrimitive returns the docs page for a component primitive slug.
func DocsPrimitive(slug string) string {
	return DocsPrimitives + escapeSegment(slug)
}

func withEntry(path, entryID string) string {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return path
	}
	return path + "?" + url.Values{EntryQueryKey: {entryID}}.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
