package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/showcase/internal/platform/icons"
	webi18n "github.com/louisbranch/showcase/internal/services/web/platform/i18n"
	"github.com/louisbranch/showcase/internal/services/web/routepath"
)

// MobileNav renders the narrow-viewport trigger and its popover sheet. Each
// entry with items is an independent accordion section; plain links sit in
// a section row of their own.
func MobileNav(page PageContext) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		toggle := T(page.Loc, webi18n.KeyNavToggleMenu)
		m.raw(`<button type="button" class="mobile-trigger icon-button"`)
		m.attr("popovertarget", MobileNavID)
		m.attr("aria-label", toggle)
		m.raw(">")
		m.component(ctx, Icon(icons.IDMenu, "icon"))
		m.raw(`<span class="sr-only">`)
		m.text(toggle)
		m.raw("</span></button>")

		m.raw("<div popover")
		m.attr("id", MobileNavID)
		m.attr("class", "mobile-sheet")
		m.raw(`><div class="mobile-sheet-head"><a class="site-brand"`)
		m.attr("href", routepath.Root)
		m.raw(">")
		m.text(page.AppName)
		m.raw(`</a><button type="button" class="icon-button"`)
		m.attr("popovertarget", MobileNavID)
		m.attr("popovertargetaction", "hide")
		m.attr("aria-label", T(page.Loc, webi18n.KeyNavClose))
		m.raw(">")
		m.component(ctx, Icon(icons.IDClose, "icon"))
		m.raw(`</button></div><nav class="mobile-nav" aria-label="Mobile">`)
		for _, entry := range page.Nav.Entries() {
			title := T(page.Loc, entry.TitleKey)
			if !entry.HasDropdown() {
				m.raw(`<div class="mobile-section"`)
				m.attr("data-entry", entry.ID)
				m.raw(`><a class="mobile-section-link"`)
				m.attr("href", entry.Link)
				m.raw(">")
				m.text(title)
				m.raw("</a></div>")
				continue
			}
			m.raw(`<details class="mobile-section"`)
			m.attr("data-entry", entry.ID)
			m.raw("><summary>")
			m.text(title)
			m.raw(`</summary><ul class="mobile-items">`)
			for _, item := range entry.Items {
				m.raw(`<li><a class="mobile-link"`)
				m.attr("href", item.Link)
				m.raw(">")
				m.text(item.Title)
				m.raw("</a></li>")
			}
			m.raw("</ul></details>")
		}
		m.raw("</nav></div>")
	})
}
