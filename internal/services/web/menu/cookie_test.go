package menu

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/showcase/internal/services/web/platform/requestmeta"
)

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	m := testMachine()
	for _, state := range []State{
		Closed(),
		{Active: "gettingStarted"},
		{Active: "components", Pinned: true},
	} {
		if got := m.Decode(Encode(state)); got != state {
			t.Fatalf("Decode(Encode(%+v)) = %+v", state, got)
		}
	}
}

func TestDecodeRejectsMalformedValues(t *testing.T) {
	t.Parallel()

	m := testMachine()
	for _, raw := range []string{"", "gettingStarted", "p.", "h.documentation", "p.missing", "x.components"} {
		if got := m.Decode(raw); got.IsOpen() {
			t.Fatalf("Decode(%q) = %+v, want closed", raw, got)
		}
	}
}

func TestCookieRoundTrip(t *testing.T) {
	t.Parallel()

	m := testMachine()
	rec := httptest.NewRecorder()
	state := State{Active: "components", Pinned: true}
	WriteCookie(rec, httptest.NewRequest(http.MethodPost, "/", nil), state, requestmeta.SchemePolicy{})

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	if cookies[0].MaxAge != 0 || !cookies[0].Expires.IsZero() {
		t.Fatalf("menu cookie should be session scoped: %+v", cookies[0])
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	if got := m.FromRequest(req); got != state {
		t.Fatalf("FromRequest() = %+v, want %+v", got, state)
	}
}

func TestWriteCookieClearsClosedState(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteCookie(rec, httptest.NewRequest(http.MethodPost, "/", nil), Closed(), requestmeta.SchemePolicy{})
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expiring cookie, got %+v", cookies)
	}
}

func TestFromRequestWithoutCookie(t *testing.T) {
	t.Parallel()

	if got := testMachine().FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)); got.IsOpen() {
		t.Fatalf("FromRequest() = %+v, want closed", got)
	}
	if got := testMachine().FromRequest(nil); got.IsOpen() {
		t.Fatalf("FromRequest(nil) = %+v, want closed", got)
	}
}

func setCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestMountStartsClosed(t *testing.T) {
	t.Parallel()

	m := testMachine()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "h.components"})
	rec := httptest.NewRecorder()
	if got := m.Mount(rec, req, requestmeta.SchemePolicy{}); got.IsOpen() {
		t.Fatalf("Mount() = %+v, want closed", got)
	}
	if cookie := setCookie(rec, CookieName); cookie == nil || cookie.MaxAge >= 0 {
		t.Fatalf("session cookie = %+v, want cleared", cookie)
	}

	fresh := httptest.NewRecorder()
	if got := m.Mount(fresh, httptest.NewRequest(http.MethodGet, "/", nil), requestmeta.SchemePolicy{}); got.IsOpen() {
		t.Fatalf("Mount() without cookies = %+v", got)
	}
	if len(fresh.Result().Cookies()) != 0 {
		t.Fatal("Mount() without cookies should not set any")
	}
}

func TestMountConsumesPinnedRestore(t *testing.T) {
	t.Parallel()

	m := testMachine()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: RestoreCookieName, Value: "p.components"})
	rec := httptest.NewRecorder()
	want := State{Active: "components", Pinned: true}
	if got := m.Mount(rec, req, requestmeta.SchemePolicy{}); got != want {
		t.Fatalf("Mount() = %+v, want %+v", got, want)
	}
	if cookie := setCookie(rec, RestoreCookieName); cookie == nil || cookie.MaxAge >= 0 {
		t.Fatalf("restore cookie = %+v, want cleared", cookie)
	}
	if cookie := setCookie(rec, CookieName); cookie == nil || m.Decode(cookie.Value) != want {
		t.Fatalf("session cookie = %+v, want %+v", cookie, want)
	}
}

func TestMountIgnoresHoverRestore(t *testing.T) {
	t.Parallel()

	m := testMachine()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: RestoreCookieName, Value: "h.components"})
	if got := m.Mount(httptest.NewRecorder(), req, requestmeta.SchemePolicy{}); got.IsOpen() {
		t.Fatalf("Mount() = %+v, want closed", got)
	}
}

func TestWriteRestoreCookieOnlyForPinned(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteRestoreCookie(rec, httptest.NewRequest(http.MethodPost, "/", nil), State{Active: "components"}, requestmeta.SchemePolicy{})
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("hover state wrote a restore cookie")
	}

	rec = httptest.NewRecorder()
	WriteRestoreCookie(rec, httptest.NewRequest(http.MethodPost, "/", nil), State{Active: "components", Pinned: true}, requestmeta.SchemePolicy{})
	if cookie := setCookie(rec, RestoreCookieName); cookie == nil || cookie.Value != "p.components" || !cookie.HttpOnly {
		t.Fatalf("restore cookie = %+v", cookie)
	}
}
