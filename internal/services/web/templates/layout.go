package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/showcase/internal/services/web/platform/i18n"
	"github.com/louisbranch/showcase/internal/services/web/theme"
)

// LayoutOptions configure one full-page render.
type LayoutOptions struct {
	Title   string
	HTMXSrc string
	Toast   *Toast
}

// PageTitle joins a page title with the app name.
func PageTitle(title, appName string) string {
	title = strings.TrimSpace(title)
	appName = strings.TrimSpace(appName)
	switch {
	case title == "":
		return appName
	case appName == "":
		return title
	default:
		return title + " | " + appName
	}
}

// Layout renders the document shell around its children.
func Layout(page PageContext, opts LayoutOptions) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		current := page.Theme
		if _, ok := theme.Parse(string(current)); !ok {
			current = theme.Light
		}
		markers := current.Markers()
		lang := page.Lang
		if lang == "" {
			lang = webi18n.Default().String()
		}

		m.raw("<!doctype html><html")
		m.attr("lang", lang)
		m.attr("class", markers.ClassString())
		m.attr("style", "color-scheme: "+markers.ColorScheme)
		m.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		m.text(PageTitle(opts.Title, page.AppName))
		m.raw(`</title><link rel="icon" type="image/svg+xml"`)
		m.attr("href", page.AssetURL("logo.svg"))
		m.raw(`><link rel="stylesheet"`)
		m.attr("href", page.AssetURL("app.css"))
		m.raw(">")
		if opts.HTMXSrc != "" {
			m.raw("<script defer")
			m.attr("src", opts.HTMXSrc)
			m.raw("></script>")
		}
		m.raw("<script defer")
		m.attr("src", page.AssetURL("shell.js"))
		m.raw("></script></head><body>")
		m.component(ctx, Header(page))
		m.raw(`<main class="site-main">`)
		m.component(ctx, templ.GetChildren(ctx))
		m.raw("</main>")
		m.component(ctx, Footer(page))
		m.component(ctx, ToastRegion(opts.Toast))
		m.raw("</body></html>")
	})
}

// Footer renders the language links.
func Footer(page PageContext) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<footer class="site-footer"><p>`)
		m.text(T(page.Loc, webi18n.KeyFooterCopy, "templ"))
		m.raw(`</p><nav class="language-nav"`)
		m.attr("aria-label", T(page.Loc, webi18n.KeyLanguageLabel))
		m.raw(">")
		for _, option := range LanguageOptions(page) {
			m.raw("<a")
			m.attr("href", option.URL)
			m.attr("hreflang", option.Tag)
			m.flag(`aria-current="true"`, option.Active)
			m.raw(">")
			m.text(option.Label)
			m.raw("</a>")
		}
		m.raw("</nav></footer>")
	})
}
