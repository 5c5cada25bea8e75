// Package pagerender centralizes site page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/showcase/internal/services/web/menu"
	"github.com/louisbranch/showcase/internal/services/web/navigation"
	flashnotice "github.com/louisbranch/showcase/internal/services/web/platform/flash"
	"github.com/louisbranch/showcase/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/showcase/internal/services/web/platform/i18n"
	"github.com/louisbranch/showcase/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/showcase/internal/services/web/routes"
	webtemplates "github.com/louisbranch/showcase/internal/services/web/templates"
	"github.com/louisbranch/showcase/internal/services/web/theme"
)

// Renderer builds the shell around page views.
type Renderer struct {
	AppName   string
	AssetBase string
	HTMXSrc   string
	Nav       navigation.Menu
	Menu      menu.Machine
	Language  webi18n.Resolver
	Policy    requestmeta.SchemePolicy
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// PageContext resolves the per-request shell state and persists an explicit
// language selection on w. The menu starts closed; full pages mount it
// from a pending restore when they render.
func (p Renderer) PageContext(w http.ResponseWriter, r *http.Request) webtemplates.PageContext {
	loc, lang := p.Language.Resolve(w, r)
	page := webtemplates.PageContext{
		Lang:      lang,
		Loc:       loc,
		AppName:   p.AppName,
		AssetBase: p.AssetBase,
		Nav:       p.Nav,
		Menu:      menu.Closed(),
		Theme:     theme.FromRequest(r),
	}
	if r != nil && r.URL != nil {
		page.CurrentPath = r.URL.Path
		page.CurrentQuery = r.URL.RawQuery
	}
	return page
}

// RenderPage writes view wrapped by the layout. HTMX requests receive the
// body fragment only.
func (p Renderer) RenderPage(w http.ResponseWriter, r *http.Request, _ routes.Entry, view routes.View) error {
	page := p.PageContext(w, r)
	return p.write(w, r, page, view.Title, view.StatusCode, view.Body)
}

// WriteShell writes body inside the full layout with an explicit status.
func (p Renderer) WriteShell(w http.ResponseWriter, r *http.Request, title string, statusCode int, body templ.Component) error {
	return p.write(w, r, p.PageContext(w, r), title, statusCode, body)
}

func (p Renderer) write(w http.ResponseWriter, r *http.Request, page webtemplates.PageContext, title string, statusCode int, body templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if body == nil {
		body = emptyComponent{}
	}
	ctx := httpx.RequestContext(r)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := body.Render(ctx, &buf); err != nil {
			return err
		}
	} else {
		page.Menu = p.Menu.Mount(w, r, p.Policy)
		layout := webtemplates.Layout(page, webtemplates.LayoutOptions{
			Title:   title,
			HTMXSrc: p.HTMXSrc,
			Toast:   p.resolveFlashToast(w, r, page.Loc),
		})
		if err := layout.Render(templ.WithChildren(ctx, body), &buf); err != nil {
			return err
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// WriteFragment renders c without the layout.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, c templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if c == nil {
		c = emptyComponent{}
	}
	var buf bytes.Buffer
	if err := c.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// LocalizeToast turns a flash notice into a rendered toast.
func LocalizeToast(loc webi18n.Localizer, notice flashnotice.Notice) *webtemplates.Toast {
	title := localize(loc, notice.TitleKey)
	if title == "" {
		return nil
	}
	return &webtemplates.Toast{
		Kind:  string(notice.Kind),
		Title: title,
		Body:  localize(loc, notice.BodyKey),
	}
}

func (p Renderer) resolveFlashToast(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer) *webtemplates.Toast {
	notice, ok := flashnotice.ReadAndClearWithPolicy(w, r, p.Policy)
	if !ok {
		return nil
	}
	return LocalizeToast(loc, notice)
}

func localize(loc webi18n.Localizer, key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if loc == nil {
		return key
	}
	if message := strings.TrimSpace(loc.Sprintf(key)); message != "" {
		return message
	}
	return key
}
