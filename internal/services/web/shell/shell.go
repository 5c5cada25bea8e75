// Package shell serves the header interaction endpoints: menu events, the
// theme toggle and the donation action.
//
// HTMX requests get the re-rendered fragment, or 204 when a menu event
// leaves the state unchanged. Plain form posts get a 303 back to the page
// they came from, which then renders the new state from cookies.
package shell

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/showcase/internal/services/web/menu"
	"github.com/louisbranch/showcase/internal/services/web/outside"
	apperrors "github.com/louisbranch/showcase/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/showcase/internal/services/web/platform/flash"
	"github.com/louisbranch/showcase/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/showcase/internal/services/web/platform/i18n"
	"github.com/louisbranch/showcase/internal/services/web/platform/pagerender"
	"github.com/louisbranch/showcase/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/showcase/internal/services/web/routepath"
	"github.com/louisbranch/showcase/internal/services/web/routes"
	webtemplates "github.com/louisbranch/showcase/internal/services/web/templates"
	"github.com/louisbranch/showcase/internal/services/web/theme"
)

// ThemeChangedEvent is the HX-Trigger event the page script listens for.
const ThemeChangedEvent = "themeChanged"

// Observer receives interaction events for metrics.
type Observer interface {
	MenuTransition(event, mode string)
	ThemeToggled(theme string)
	Donated()
}

type noopObserver struct{}

func (noopObserver) MenuTransition(string, string) {}
func (noopObserver) ThemeToggled(string)           {}
func (noopObserver) Donated()                      {}

// Config wires the handlers.
type Config struct {
	Machine  menu.Machine
	Renderer pagerender.Renderer
	Table    routes.Table
	Policy   requestmeta.SchemePolicy
	Observer Observer
	Logger   *log.Logger
}

// Handlers serves the /ui/ endpoints.
type Handlers struct {
	machine  menu.Machine
	renderer pagerender.Renderer
	table    routes.Table
	policy   requestmeta.SchemePolicy
	observer Observer
	logger   *log.Logger
}

// ThemeChanged is the detail of the themeChanged client event.
type ThemeChanged struct {
	Theme       string   `json:"theme"`
	Classes     []string `json:"classes"`
	ColorScheme string   `json:"colorScheme"`
}

// New returns handlers for cfg.
func New(cfg Config) *Handlers {
	observer := cfg.Observer
	if observer == nil {
		observer = noopObserver{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Handlers{
		machine:  cfg.Machine,
		renderer: cfg.Renderer,
		table:    cfg.Table,
		policy:   cfg.Policy,
		observer: observer,
		logger:   logger,
	}
}

// Register mounts every endpoint on mux.
func (h *Handlers) Register(mux *http.ServeMux) {
	post := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler, httpx.RequireMethod(http.MethodPost), h.sameOrigin)
	}
	mux.Handle(routepath.MenuHover, post(h.menuEvent(menu.EventHoverEnter)))
	mux.Handle(routepath.MenuLeave, post(h.menuEvent(menu.EventHoverLeave)))
	mux.Handle(routepath.MenuClick, post(h.menuEvent(menu.EventClick)))
	mux.Handle(routepath.MenuOutside, post(h.menuEvent(menu.EventOutside)))
	mux.Handle(routepath.Theme, post(h.toggleTheme))
	mux.Handle(routepath.Donate, post(h.donate))
}

func (h *Handlers) sameOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requestmeta.IsCrossOrigin(r, h.policy) {
			h.logger.Printf("cross-origin ui request rejected path=%s origin=%q request_id=%s", r.URL.Path, r.Header.Get("Origin"), httpx.RequestIDFrom(r))
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handlers) menuEvent(kind menu.EventKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.parseForm(w, r) {
			return
		}
		current := h.machine.FromRequest(r)
		var next menu.State
		if kind == menu.EventOutside {
			next = h.closeIfOutside(current, r.Form[routepath.RegionFormKey])
		} else {
			next = h.machine.Apply(current, menu.Event{Kind: kind, Entry: r.Form.Get(routepath.EntryQueryKey)})
		}
		h.observer.MenuTransition(string(kind), next.Mode())

		returnTo := h.returnPath(r)
		if !httpx.IsHTMXRequest(r) {
			menu.WriteCookie(w, r, next, h.policy)
			menu.WriteRestoreCookie(w, r, next, h.policy)
			http.Redirect(w, r, returnTo, http.StatusSeeOther)
			return
		}
		if next == current {
			// htmx does not swap on 204.
			w.WriteHeader(http.StatusNoContent)
			return
		}
		menu.WriteCookie(w, r, next, h.policy)
		page := h.renderer.PageContext(w, r)
		page.Menu = next
		page.CurrentPath = returnTo
		page.CurrentQuery = ""
		h.writeFragment(w, r, webtemplates.DesktopNav(page))
	}
}

// closeIfOutside mounts the open entry's region for the span of one
// pointer-down and closes the menu when the pointer landed elsewhere.
func (h *Handlers) closeIfOutside(current menu.State, regions []string) menu.State {
	if !current.IsOpen() {
		return current
	}
	next := current
	var detector outside.Detector
	release := detector.Watch(menu.RegionID(current.Active), func() {
		next = h.machine.Apply(current, menu.Event{Kind: menu.EventOutside})
	})
	defer release()
	detector.Dispatch(outside.NewTarget(regions...))
	return next
}

func (h *Handlers) toggleTheme(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	classes := theme.SplitClasses(r.Form.Get(routepath.ClassesFormKey))
	next := theme.Current(r, classes).Toggle()
	theme.WriteCookie(w, r, next, h.policy)
	h.observer.ThemeToggled(string(next))

	returnTo := h.returnPath(r)
	if !httpx.IsHTMXRequest(r) {
		http.Redirect(w, r, returnTo, http.StatusSeeOther)
		return
	}
	markers := next.Apply(classes)
	if err := httpx.SetHXTrigger(w, ThemeChangedEvent, ThemeChanged{
		Theme:       string(next),
		Classes:     markers.Classes,
		ColorScheme: markers.ColorScheme,
	}); err != nil {
		httpx.WriteError(w, err)
		return
	}
	page := h.renderer.PageContext(w, r)
	page.Theme = next
	page.CurrentPath = returnTo
	page.CurrentQuery = ""
	h.writeFragment(w, r, webtemplates.ThemeToggle(page))
}

func (h *Handlers) donate(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	h.observer.Donated()
	notice := flashnotice.NoticeSuccess(webi18n.KeyDonationTitle, webi18n.KeyDonationBody)
	if !httpx.IsHTMXRequest(r) {
		flashnotice.WriteWithPolicy(w, r, notice, h.policy)
		http.Redirect(w, r, h.returnPath(r), http.StatusSeeOther)
		return
	}
	loc, _ := h.renderer.Language.Localizer(r)
	toast := pagerender.LocalizeToast(loc, notice)
	if toast == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeFragment(w, r, webtemplates.ToastItem(*toast))
}

func (h *Handlers) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, apperrors.Wrap(apperrors.KindInvalidInput, "invalid form", err))
		return false
	}
	return true
}

func (h *Handlers) returnPath(r *http.Request) string {
	return requestmeta.ReturnPath(r, r.Form.Get(routepath.ReturnToFormKey), func(path string) bool {
		_, ok := h.table.Match(path)
		return ok
	}, routepath.Root)
}

func (h *Handlers) writeFragment(w http.ResponseWriter, r *http.Request, fragment templ.Component) {
	if err := pagerender.WriteFragment(w, r, http.StatusOK, fragment); err != nil {
		h.logger.Printf("render fragment failed path=%s request_id=%s err=%v", r.URL.Path, httpx.RequestIDFrom(r), err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
