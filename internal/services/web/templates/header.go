package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/showcase/internal/platform/icons"
	"github.com/louisbranch/showcase/internal/services/web/menu"
	"github.com/louisbranch/showcase/internal/services/web/navigation"
	webi18n "github.com/louisbranch/showcase/internal/services/web/platform/i18n"
	"github.com/louisbranch/showcase/internal/services/web/routepath"
	"github.com/louisbranch/showcase/internal/services/web/theme"
)

// DOM ids HTMX swaps target.
const (
	DesktopNavID  = "desktop-nav"
	ThemeToggleID = "theme-toggle"
	ToastRegionID = "toast-region"
	MobileNavID   = "mobile-nav"
)

// Header renders the persistent site header.
func Header(page PageContext) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<header class="site-header"><div class="site-header-inner">`)
		m.component(ctx, MobileNav(page))
		m.raw(`<a class="site-brand"`)
		m.attr("href", routepath.Root)
		m.raw(">")
		m.text(page.AppName)
		m.raw("</a>")
		m.component(ctx, DesktopNav(page))
		m.raw(`<div class="site-actions">`)
		m.component(ctx, DonateButton(page))
		m.component(ctx, ThemeToggle(page))
		m.raw("</div></div></header>")
	})
}

// DesktopNav renders the dropdown navigation. It is the swap target of every
// menu event.
func DesktopNav(page PageContext) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw("<nav")
		m.attr("id", DesktopNavID)
		m.attr("class", "desktop-nav")
		m.attr("aria-label", "Main")
		m.attr("data-menu-state", page.Menu.Mode())
		m.attr("hx-sync", "this:queue all")
		if page.Menu.IsOpen() {
			m.attr("data-menu-open", menu.RegionID(page.Menu.Active))
		}
		m.raw(`><ul class="nav-list"`)
		m.attr("hx-post", routepath.MenuLeave)
		m.attr("hx-trigger", "mouseleave")
		m.attr("hx-target", "#"+DesktopNavID)
		m.attr("hx-swap", "outerHTML")
		m.raw(">")
		for _, entry := range page.Nav.Entries() {
			if entry.HasDropdown() {
				m.component(ctx, dropdownEntry(page, entry))
				continue
			}
			m.raw(`<li class="nav-entry"><a class="nav-link"`)
			m.attr("href", entry.Link)
			m.flag(`aria-current="page"`, entry.Link == page.CurrentPath)
			m.raw(">")
			m.text(T(page.Loc, entry.TitleKey))
			m.raw("</a></li>")
		}
		m.raw("</ul></nav>")
	})
}

func dropdownEntry(page PageContext, entry navigation.Entry) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		open := page.Menu.IsOpenEntry(entry.ID)
		m.raw("<li")
		m.attr("id", menu.RegionID(entry.ID))
		m.attr("class", "nav-entry")
		m.attr("data-menu-region", menu.RegionID(entry.ID))
		m.attr("hx-post", routepath.MenuHoverFor(entry.ID))
		m.attr("hx-trigger", "mouseenter")
		m.raw(">")

		m.raw(`<form class="nav-trigger-form" method="post"`)
		m.attr("action", routepath.MenuClickFor(entry.ID))
		m.raw(`><input type="hidden"`)
		m.attr("name", routepath.ReturnToFormKey)
		m.attr("value", page.ReturnPath())
		m.raw(`><button type="submit" class="nav-trigger"`)
		m.attr("hx-post", routepath.MenuClickFor(entry.ID))
		m.attr("aria-expanded", boolString(open))
		m.attr("aria-controls", menu.PanelID(entry.ID))
		m.raw(">")
		m.text(T(page.Loc, entry.TitleKey))
		m.component(ctx, Icon(icons.IDChevronDown, "nav-chevron"))
		m.raw("</button></form>")

		if open {
			m.component(ctx, dropdownPanel(page, entry))
		}
		m.raw("</li>")
	})
}

func dropdownPanel(page PageContext, entry navigation.Entry) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw("<div")
		m.attr("id", menu.PanelID(entry.ID))
		m.attr("class", "nav-panel")
		m.attr("data-state", page.Menu.Mode())
		m.raw(">")
		if feature := entry.Feature; feature != nil {
			m.raw(`<a class="nav-feature"`)
			m.attr("href", feature.Link)
			m.raw(`><img class="nav-feature-logo" alt="" width="48" height="48"`)
			m.attr("src", page.AssetURL(feature.LogoSrc))
			m.raw(`><div class="nav-feature-title">`)
			m.text(feature.Title)
			m.raw(`</div><p class="nav-feature-body">`)
			m.text(T(page.Loc, feature.BodyKey))
			m.raw("</p></a>")
		}
		m.raw(`<ul class="nav-items">`)
		for _, item := range entry.Items {
			m.raw(`<li><a class="nav-item"`)
			m.attr("href", item.Link)
			m.raw(`><div class="nav-item-title">`)
			m.text(item.Title)
			m.raw(`</div><p class="nav-item-description">`)
			m.text(item.Description)
			m.raw("</p></a></li>")
		}
		m.raw("</ul></div>")
	})
}

// ThemeToggle renders the light/dark switch. The icon names the theme a
// click switches to.
func ThemeToggle(page PageContext) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		current := page.Theme
		if _, ok := theme.Parse(string(current)); !ok {
			current = theme.Light
		}
		glyph := icons.IDThemeDark
		if current == theme.Dark {
			glyph = icons.IDThemeLight
		}
		label := T(page.Loc, webi18n.KeyNavToggleTheme)
		m.raw(`<form class="theme-toggle-form" method="post"`)
		m.attr("id", ThemeToggleID)
		m.attr("action", routepath.Theme)
		m.raw(`><input type="hidden"`)
		m.attr("name", routepath.ReturnToFormKey)
		m.attr("value", page.ReturnPath())
		m.raw(`><button type="submit" class="icon-button"`)
		m.attr("hx-post", routepath.Theme)
		m.attr("hx-target", "#"+ThemeToggleID)
		m.attr("hx-swap", "outerHTML")
		m.attr("hx-vals", `js:{"`+routepath.ClassesFormKey+`": document.documentElement.className}`)
		m.attr("data-theme", string(current))
		m.attr("aria-label", label)
		m.raw(">")
		m.component(ctx, Icon(glyph, "icon"))
		m.raw(`<span class="sr-only">`)
		m.text(label)
		m.raw("</span></button></form>")
	})
}

// DonateButton posts the donation action; HTMX appends the toast.
func DonateButton(page PageContext) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		label := T(page.Loc, webi18n.KeyNavDonate)
		m.raw(`<form class="donate-form" method="post"`)
		m.attr("action", routepath.Donate)
		m.raw(`><input type="hidden"`)
		m.attr("name", routepath.ReturnToFormKey)
		m.attr("value", page.ReturnPath())
		m.raw(`><button type="submit" class="icon-button"`)
		m.attr("hx-post", routepath.Donate)
		m.attr("hx-target", "#"+ToastRegionID)
		m.attr("hx-swap", "beforeend")
		m.attr("aria-label", label)
		m.raw(">")
		m.component(ctx, Icon(icons.IDDonate, "icon"))
		m.raw(`<span class="sr-only">`)
		m.text(label)
		m.raw("</span></button></form>")
	})
}
