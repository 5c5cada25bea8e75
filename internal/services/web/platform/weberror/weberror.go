// Package weberror renders shared app-shell error responses.
package weberror

import (
	"log"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/showcase/internal/services/web/platform/errors"
	"github.com/louisbranch/showcase/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/showcase/internal/services/web/platform/i18n"
	"github.com/louisbranch/showcase/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/showcase/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use app error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	return apperrors.PublicMessage(err)
}

// WriteAppError writes a localized app-shell error page.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, renderer pagerender.Renderer) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, _ := renderer.Language.Localizer(r)
	title := webtemplates.ErrorPageTitle(statusCode, loc)
	if err := renderer.WriteShell(w, r, title, statusCode, webtemplates.ErrorState(statusCode, loc)); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// Writer returns an error writer that renders app-shell pages for 404 and
// 5xx errors and plain text otherwise.
func Writer(renderer pagerender.Renderer, logger *log.Logger) func(http.ResponseWriter, *http.Request, error) {
	if logger == nil {
		logger = log.Default()
	}
	return func(w http.ResponseWriter, r *http.Request, err error) {
		if w == nil || err == nil {
			return
		}
		statusCode := apperrors.HTTPStatus(err)
		if statusCode >= http.StatusInternalServerError {
			logger.Printf("request failed path=%s request_id=%s status=%d err=%v", requestPath(r), httpx.RequestIDFrom(r), statusCode, err)
		}
		if ShouldRenderAppError(statusCode) {
			WriteAppError(w, r, statusCode, renderer)
			return
		}
		loc, _ := renderer.Language.Localizer(r)
		http.Error(w, PublicMessage(loc, err), statusCode)
	}
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "-"
	}
	return r.URL.Path
}
