// Package navigation defines the static link set shared by the desktop
// header and the mobile sheet.
package navigation

import (
	"github.com/louisbranch/showcase/internal/platform/branding"
	webi18n "github.com/louisbranch/showcase/internal/services/web/platform/i18n"
	"github.com/louisbranch/showcase/internal/services/web/routepath"
	"github.com/louisbranch/showcase/internal/services/web/routes"
)

// Entry identifiers double as menu state values and DOM region suffixes.
const (
	EntryGettingStarted = "gettingStarted"
	EntryComponents     = "components"
	EntryDocumentation  = "documentation"
)

// Item is one link inside a dropdown or accordion section.
type Item struct {
	Title       string
	Link        string
	Description string
}

// Feature is the highlighted card shown beside an entry's items.
type Feature struct {
	Title   string
	Link    string
	BodyKey string
	LogoSrc string
}

// Entry is one top-level header entry. An entry with items owns a dropdown;
// an entry without items is a plain link.
type Entry struct {
	ID       string
	TitleKey string
	Link     string
	Feature  *Feature
	Items    []Item
}

// HasDropdown reports whether the entry opens a panel.
func (e Entry) HasDropdown() bool {
	return len(e.Items) > 0
}

// GettingStartedItems lists the introductory docs links.
func GettingStartedItems() []Item {
	return []Item{
		{
			Title:       "Introduction",
			Link:        routepath.DocsIntroduction,
			Description: "Re-usable components built using Radix UI and Tailwind CSS.",
		},
		{
			Title:       "Installation",
			Link:        routepath.DocsInstallation,
			Description: "How to install dependencies and structure your app.",
		},
		{
			Title:       "Typography",
			Link:        routepath.DocsTypography,
			Description: "Styles for headings, paragraphs, lists...etc",
		},
	}
}

// ComponentItems lists the primitive component docs.
func ComponentItems() []Item {
	return []Item{
		{
			Title:       "Alert Dialog",
			Link:        routepath.DocsPrimitive("alert-dialog"),
			Description: "A modal dialog that interrupts the user with important content and expects a response.",
		},
		{
			Title:       "Hover Card",
			Link:        routepath.DocsPrimitive("hover-card"),
			Description: "For sighted users to preview content available behind a link.",
		},
		{
			Title:       "Progress",
			Link:        routepath.DocsPrimitive("progress"),
			Description: "Displays an indicator showing the completion progress of a task, typically displayed as a progress bar.",
		},
		{
			Title:       "Scroll-area",
			Link:        routepath.DocsPrimitive("scroll-area"),
			Description: "Visually or semantically separates content.",
		},
		{
			Title:       "Tabs",
			Link:        routepath.DocsPrimitive("tabs"),
			Description: "A set of layered sections of content, known as tab panels, that are displayed one at a time.",
		},
		{
			Title:       "Tooltip",
			Link:        routepath.DocsPrimitive("tooltip"),
			Description: "A popup that displays information related to an element when the element receives keyboard focus or the mouse hovers over it.",
		},
	}
}

// Menu is the ordered set of header entries.
type Menu struct {
	entries []Entry
}

// Default builds the site menu. Documentation is the one link taken from the
// route table.
func Default(table routes.Table) Menu {
	return Menu{entries: []Entry{
		{
			ID:       EntryGettingStarted,
			TitleKey: webi18n.KeyNavGettingStarted,
			Feature: &Feature{
				Title:   branding.ProjectName,
				Link:    routepath.Root,
				BodyKey: webi18n.KeyFeatureBody,
				LogoSrc: routepath.StaticPrefix + "logo.svg",
			},
			Items: GettingStartedItems(),
		},
		{
			ID:       EntryComponents,
			TitleKey: webi18n.KeyNavComponents,
			Items:    ComponentItems(),
		},
		{
			ID:       EntryDocumentation,
			TitleKey: webi18n.KeyNavDocumentation,
			Link:     table.Path(routes.NameProjectGallery),
		},
	}}
}

// Entries returns the entries in display order.
func (m Menu) Entries() []Entry {
	result := make([]Entry, len(m.entries))
	copy(result, m.entries)
	return result
}

// Lookup returns the entry with id.
func (m Menu) Lookup(id string) (Entry, bool) {
	for _, entry := range m.entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return Entry{}, false
}

// HasDropdown reports whether id names an entry with a panel.
func (m Menu) HasDropdown(id string) bool {
	entry, ok := m.Lookup(id)
	return ok && entry.HasDropdown()
}
