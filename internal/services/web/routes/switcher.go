package routes

import (
	"context"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/showcase/internal/services/web/platform/httpx"
)

const allowedMethods = "GET, HEAD"

// View is what a page contributes to a response; the renderer supplies the
// surrounding chrome.
type View struct {
	Title      string
	StatusCode int
	Body       templ.Component
}

// Page produces the view for one route.
type Page interface {
	View(r *http.Request) (View, error)
}

// PageFunc adapts a function into a Page.
type PageFunc func(r *http.Request) (View, error)

// View calls f(r).
func (f PageFunc) View(r *http.Request) (View, error) {
	return f(r)
}

// Renderer wraps a page view with the shared header and writes it.
type Renderer interface {
	RenderPage(w http.ResponseWriter, r *http.Request, entry Entry, view View) error
}

// ErrorWriter writes a failure from a page or the renderer.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// Switcher serves every entry of a table through one renderer.
type Switcher struct {
	table    Table
	pages    map[Name]Page
	renderer Renderer
	onError  ErrorWriter
}

type entryContextKey struct{}

// NewSwitcher validates that every entry in table has a page.
func NewSwitcher(table Table, pages map[Name]Page, renderer Renderer, onError ErrorWriter) (*Switcher, error) {
	if renderer == nil {
		return nil, fmt.Errorf("route renderer is required")
	}
	if onError == nil {
		onError = func(w http.ResponseWriter, _ *http.Request, err error) {
			httpx.WriteError(w, err)
		}
	}
	bound := make(map[Name]Page, len(pages))
	for _, entry := range table.Entries() {
		page, ok := pages[entry.Name]
		if !ok || page == nil {
			return nil, fmt.Errorf("route %q has no page", entry.Name)
		}
		bound[entry.Name] = page
	}
	for name := range pages {
		if _, ok := table.Lookup(name); !ok {
			return nil, fmt.Errorf("page %q has no route", name)
		}
	}
	return &Switcher{table: table, pages: bound, renderer: renderer, onError: onError}, nil
}

// ServeHTTP matches the exact request path. Unknown paths redirect to the
// table's not-found entry.
func (s *Switcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.table.Match(r.URL.Path)
	if !ok {
		httpx.WriteRedirect(w, r, s.table.NotFound().Path)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		httpx.MethodNotAllowed(allowedMethods).ServeHTTP(w, r)
		return
	}
	r = r.WithContext(WithEntry(r.Context(), entry))
	view, err := s.pages[entry.Name].View(r)
	if err != nil {
		s.onError(w, r, err)
		return
	}
	if err := s.renderer.RenderPage(w, r, entry, view); err != nil {
		s.onError(w, r, err)
	}
}

// WithEntry records the matched route on ctx.
func WithEntry(ctx context.Context, entry Entry) context.Context {
	return context.WithValue(ctx, entryContextKey{}, entry)
}

// EntryFromContext returns the route matched for the current request.
func EntryFromContext(ctx context.Context) (Entry, bool) {
	if ctx == nil {
		return Entry{}, false
	}
	entry, ok := ctx.Value(entryContextKey{}).(Entry)
	return entry, ok
}
