package pagerender

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/showcase/internal/services/web/menu"
	"github.com/louisbranch/showcase/internal/services/web/navigation"
	flashnotice "github.com/louisbranch/showcase/internal/services/web/platform/flash"
	webi18n "github.com/louisbranch/showcase/internal/services/web/platform/i18n"
	"github.com/louisbranch/showcase/internal/services/web/routes"
	"github.com/louisbranch/showcase/internal/services/web/theme"
)

func testRenderer() Renderer {
	nav := navigation.Default(routes.DefaultTable())
	return Renderer{
		AppName: "Showcase",
		Nav:     nav,
		Menu:    menu.NewMachine(nav),
	}
}

func body(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>"+text+"</p>")
		return err
	})
}

func TestRenderPageWrapsWithLayout(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	err := testRenderer().RenderPage(rec, req, routes.Entry{Name: routes.NameHome, Path: "/"}, routes.View{
		Title: "Home",
		Body:  body("welcome"),
	})
	if err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", got)
	}
	out := rec.Body.String()
	for _, marker := range []string{"<!doctype html>", `class="site-header"`, "<p>welcome</p>", "<title>Home | Showcase</title>"} {
		if !strings.Contains(out, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
}

func TestRenderPageUsesViewStatus(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := testRenderer().RenderPage(rec, httptest.NewRequest(http.MethodGet, "/page-not-found", nil), routes.Entry{}, routes.View{
		StatusCode: http.StatusNotFound,
		Body:       body("missing"),
	})
	if err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRenderPageHTMXWritesFragment(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	if err := testRenderer().RenderPage(rec, req, routes.Entry{}, routes.View{Body: body("frag")}); err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	if got := rec.Body.String(); got != "<p>frag</p>" {
		t.Fatalf("body = %q", got)
	}
}

func TestRenderPageReflectsThemeCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: theme.CookieName, Value: "dark"})
	rec := httptest.NewRecorder()
	if err := testRenderer().RenderPage(rec, req, routes.Entry{}, routes.View{}); err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	if !strings.Contains(rec.Body.String(), `class="dark"`) {
		t.Fatal("expected dark theme markers")
	}
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestRenderPageMountsMenuClosed(t *testing.T) {
	t.Parallel()

	for _, state := range []menu.State{
		{Active: navigation.EntryComponents},
		{Active: navigation.EntryComponents, Pinned: true},
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: menu.CookieName, Value: menu.Encode(state)})
		rec := httptest.NewRecorder()
		if err := testRenderer().RenderPage(rec, req, routes.Entry{}, routes.View{}); err != nil {
			t.Fatalf("RenderPage() error = %v", err)
		}
		out := rec.Body.String()
		if strings.Contains(out, "nav-panel") || !strings.Contains(out, `data-menu-state="closed"`) {
			t.Fatalf("session state %+v leaked into a fresh page", state)
		}
		cleared := responseCookie(rec, menu.CookieName)
		if cleared == nil || cleared.MaxAge >= 0 {
			t.Fatalf("menu cookie not reset for %+v: %+v", state, cleared)
		}
	}
}

func TestRenderPageRestoresPinnedMenuOnce(t *testing.T) {
	t.Parallel()

	pinned := menu.Encode(menu.State{Active: navigation.EntryComponents, Pinned: true})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: menu.CookieName, Value: pinned})
	req.AddCookie(&http.Cookie{Name: menu.RestoreCookieName, Value: pinned})
	rec := httptest.NewRecorder()
	if err := testRenderer().RenderPage(rec, req, routes.Entry{}, routes.View{}); err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	if !strings.Contains(rec.Body.String(), `id="menu-panel-components"`) {
		t.Fatal("expected pinned components panel")
	}
	if restore := responseCookie(rec, menu.RestoreCookieName); restore == nil || restore.MaxAge >= 0 {
		t.Fatalf("restore cookie not consumed: %+v", restore)
	}
	if session := responseCookie(rec, menu.CookieName); session != nil {
		t.Fatalf("matching session cookie rewritten: %+v", session)
	}
}

func TestRenderPageIgnoresHoverRestore(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: menu.RestoreCookieName, Value: menu.Encode(menu.State{Active: navigation.EntryComponents})})
	rec := httptest.NewRecorder()
	if err := testRenderer().RenderPage(rec, req, routes.Entry{}, routes.View{}); err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	if strings.Contains(rec.Body.String(), "nav-panel") {
		t.Fatal("hover state must not be restored")
	}
}

func TestRenderPageShowsFlashOnce(t *testing.T) {
	t.Parallel()

	seed := httptest.NewRecorder()
	flashnotice.Write(seed, httptest.NewRequest(http.MethodPost, "/", nil), flashnotice.NoticeSuccess(webi18n.KeyDonationTitle, webi18n.KeyDonationBody))
	cookies := seed.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("flash cookies = %d", len(cookies))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec := httptest.NewRecorder()
	if err := testRenderer().RenderPage(rec, req, routes.Entry{}, routes.View{}); err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Thank you!") {
		t.Fatal("expected donation toast")
	}
	cleared := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == flashnotice.CookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected flash cookie to be cleared")
	}
}

func TestLocalizeToast(t *testing.T) {
	t.Parallel()

	if toast := LocalizeToast(nil, flashnotice.Notice{}); toast != nil {
		t.Fatalf("empty notice toast = %+v", toast)
	}
	toast := LocalizeToast(nil, flashnotice.NoticeSuccess("raw.title", ""))
	if toast == nil || toast.Title != "raw.title" || toast.Body != "" {
		t.Fatalf("toast = %+v", toast)
	}
}

func TestWriteFragment(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if err := WriteFragment(rec, httptest.NewRequest(http.MethodPost, "/", nil), 0, body("x")); err != nil {
		t.Fatalf("WriteFragment() error = %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "<p>x</p>" {
		t.Fatalf("fragment = %d %q", rec.Code, rec.Body.String())
	}
}
