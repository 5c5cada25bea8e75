package web

import (
	"net/http"

	"github.com/louisbranch/showcase/internal/services/web/content"
	"github.com/louisbranch/showcase/internal/services/web/gallery"
	apperrors "github.com/louisbranch/showcase/internal/services/web/platform/errors"
	webi18n "github.com/louisbranch/showcase/internal/services/web/platform/i18n"
	"github.com/louisbranch/showcase/internal/services/web/routes"
	webtemplates "github.com/louisbranch/showcase/internal/services/web/templates"
)

// sitePages maps every route name to its view.
func sitePages(language webi18n.Resolver, store gallery.Lister) map[routes.Name]routes.Page {
	return map[routes.Name]routes.Page{
		routes.NameHome: routes.PageFunc(func(r *http.Request) (routes.View, error) {
			html, err := content.HomeHTML()
			if err != nil {
				return routes.View{}, apperrors.Wrap(apperrors.KindUnknown, "render home copy", err)
			}
			loc, _ := language.Localizer(r)
			return routes.View{
				Title: webtemplates.T(loc, webi18n.KeyTitleHome),
				Body:  webtemplates.HomePage(html),
			}, nil
		}),
		routes.NameProjectGallery: gallery.NewPage(store, language),
		routes.NamePageNotFound: routes.PageFunc(func(r *http.Request) (routes.View, error) {
			loc, _ := language.Localizer(r)
			return routes.View{
				Title:      webtemplates.T(loc, webi18n.KeyTitleNotFound),
				StatusCode: http.StatusNotFound,
				Body:       webtemplates.NotFoundPage(loc),
			}, nil
		}),
	}
}
