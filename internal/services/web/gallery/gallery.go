// Package gallery serves the project gallery page.
package gallery

import (
	"context"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/showcase/internal/services/web/platform/errors"
	webi18n "github.com/louisbranch/showcase/internal/services/web/platform/i18n"
	"github.com/louisbranch/showcase/internal/services/web/routes"
	webstorage "github.com/louisbranch/showcase/internal/services/web/storage"
	webtemplates "github.com/louisbranch/showcase/internal/services/web/templates"
)

// Lister reads gallery projects.
type Lister interface {
	ListProjects(ctx context.Context) ([]webstorage.Project, error)
}

// Page renders the gallery route.
type Page struct {
	store    Lister
	language webi18n.Resolver
}

// NewPage returns a gallery page reading from store. A nil store renders the
// empty state.
func NewPage(store Lister, language webi18n.Resolver) Page {
	return Page{store: store, language: language}
}

// Projects lists projects in display form.
func (p Page) Projects(ctx context.Context) ([]webtemplates.GalleryProject, error) {
	if p.store == nil {
		return nil, nil
	}
	stored, err := p.store.ListProjects(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUnavailable, "gallery is unavailable", err)
	}
	projects := make([]webtemplates.GalleryProject, 0, len(stored))
	for _, project := range stored {
		projects = append(projects, webtemplates.GalleryProject{
			Name:        project.Name,
			Description: project.Description,
			URL:         safeURL(project.URL),
			ImageURL:    safeURL(project.ImageURL),
		})
	}
	return projects, nil
}

// View implements routes.Page.
func (p Page) View(r *http.Request) (routes.View, error) {
	projects, err := p.Projects(r.Context())
	if err != nil {
		return routes.View{}, err
	}
	loc, _ := p.language.Localizer(r)
	return routes.View{
		Title: webtemplates.T(loc, webi18n.KeyTitleGallery),
		Body:  webtemplates.GalleryPage(loc, projects),
	}, nil
}

// safeURL keeps only http(s) and site-relative links.
func safeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "https://"), strings.HasPrefix(lower, "http://"):
		return raw
	case strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//"):
		return raw
	default:
		return ""
	}
}
