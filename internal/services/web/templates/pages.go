package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/showcase/internal/services/web/platform/i18n"
	"github.com/louisbranch/showcase/internal/services/web/routepath"
)

// HomePage wraps pre-rendered markdown.
func HomePage(html string) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<article class="prose home">`)
		m.component(ctx, templ.Raw(html))
		m.raw("</article>")
	})
}

// GalleryProject is one card of the project gallery.
type GalleryProject struct {
	Name        string
	Description string
	URL         string
	ImageURL    string
}

// GalleryPage lists projects.
func GalleryPage(loc Localizer, projects []GalleryProject) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<section class="gallery"><h1>`)
		m.text(T(loc, webi18n.KeyTitleGallery))
		m.raw(`</h1><p class="gallery-intro">`)
		m.text(T(loc, webi18n.KeyGalleryIntro))
		m.raw("</p>")
		if len(projects) == 0 {
			m.raw(`<p class="gallery-empty">`)
			m.text(T(loc, webi18n.KeyGalleryEmpty))
			m.raw("</p></section>")
			return
		}
		m.raw(`<ul class="gallery-grid">`)
		for _, project := range projects {
			m.raw(`<li class="gallery-card">`)
			if project.ImageURL != "" {
				m.raw(`<img class="gallery-image" alt="" loading="lazy"`)
				m.attr("src", project.ImageURL)
				m.raw(">")
			}
			m.raw(`<h2 class="gallery-name">`)
			m.text(project.Name)
			m.raw(`</h2><p class="gallery-description">`)
			m.text(project.Description)
			m.raw("</p>")
			if project.URL != "" {
				m.raw(`<a class="gallery-link" rel="noopener"`)
				m.attr("href", project.URL)
				m.raw(">")
				m.text(T(loc, webi18n.KeyGalleryVisit, project.Name))
				m.raw("</a>")
			}
			m.raw("</li>")
		}
		m.raw("</ul></section>")
	})
}

// NotFoundPage is the not-found route body.
func NotFoundPage(loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<section class="not-found"><h1>`)
		m.text(T(loc, webi18n.KeyTitleNotFound))
		m.raw("</h1><p>")
		m.text(T(loc, webi18n.KeyNotFoundBody))
		m.raw("</p><a")
		m.attr("href", routepath.Root)
		m.raw(">")
		m.text(T(loc, webi18n.KeyNotFoundHome))
		m.raw("</a></section>")
	})
}

// ErrorPageTitle returns the document title for an error status.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, webi18n.KeyTitleNotFound)
	}
	return T(loc, webi18n.KeyErrorTitle)
}

// ErrorState renders the body of an app-shell error page.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return NotFoundPage(loc)
	}
	return component(func(_ context.Context, m *markup) {
		m.raw(`<section class="app-error" data-status="500"><h1>`)
		m.text(T(loc, webi18n.KeyErrorTitle))
		m.raw("</h1><p>")
		m.text(T(loc, webi18n.KeyErrorBody))
		m.raw("</p><a")
		m.attr("href", routepath.Root)
		m.raw(">")
		m.text(T(loc, webi18n.KeyErrorHome))
		m.raw("</a></section>")
	})
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
