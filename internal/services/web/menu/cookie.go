package menu

import (
	"net/http"
	"strings"

	"github.com/louisbranch/showcase/internal/services/web/platform/requestmeta"
)

// CookieName stores the open dropdown for the browser session.
const CookieName = "showcase_menu"

// RestoreCookieName carries a pinned dropdown across the redirect that
// follows a form-post click. It is read once by the next full page.
const RestoreCookieName = "showcase_menu_restore"

const (
	hoverPrefix  = "h."
	pinnedPrefix = "p."
)

// Encode returns the cookie value for state. Closed encodes as "".
func Encode(state State) string {
	if !state.IsOpen() {
		return ""
	}
	if state.Pinned {
		return pinnedPrefix + state.Active
	}
	return hoverPrefix + state.Active
}

// Decode parses a cookie value. Malformed values decode as closed.
func (m Machine) Decode(raw string) State {
	raw = strings.TrimSpace(raw)
	var state State
	switch {
	case strings.HasPrefix(raw, pinnedPrefix):
		state = State{Active: strings.TrimPrefix(raw, pinnedPrefix), Pinned: true}
	case strings.HasPrefix(raw, hoverPrefix):
		state = State{Active: strings.TrimPrefix(raw, hoverPrefix)}
	default:
		return Closed()
	}
	return m.Normalize(state)
}

// FromRequest reads the menu cookie.
func (m Machine) FromRequest(r *http.Request) State {
	if r == nil {
		return Closed()
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return Closed()
	}
	return m.Decode(cookie.Value)
}

// WriteCookie stores state as a session cookie, clearing it when closed.
func WriteCookie(w http.ResponseWriter, r *http.Request, state State, policy requestmeta.SchemePolicy) {
	writeStateCookie(w, r, CookieName, Encode(state), policy)
}

// WriteRestoreCookie hands a pinned state to the next full page. Other
// states clear any pending restore.
func WriteRestoreCookie(w http.ResponseWriter, r *http.Request, state State, policy requestmeta.SchemePolicy) {
	if state.Pinned && state.IsOpen() {
		writeStateCookie(w, r, RestoreCookieName, Encode(state), policy)
		return
	}
	if r != nil {
		if _, err := r.Cookie(RestoreCookieName); err == nil {
			writeStateCookie(w, r, RestoreCookieName, "", policy)
		}
	}
}

// Mount returns the state a full page starts in. Pages mount closed unless
// a pending restore names a pinned entry; the restore is consumed and the
// session cookie is rewritten when it disagrees with the mounted state.
func (m Machine) Mount(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) State {
	mounted := Closed()
	if r == nil {
		return mounted
	}
	if cookie, err := r.Cookie(RestoreCookieName); err == nil {
		writeStateCookie(w, r, RestoreCookieName, "", policy)
		if restored := m.Decode(cookie.Value); restored.Pinned {
			mounted = restored
		}
	}
	if m.FromRequest(r) != mounted {
		WriteCookie(w, r, mounted, policy)
	}
	return mounted
}

func writeStateCookie(w http.ResponseWriter, r *http.Request, name, value string, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
	}
	if cookie.Value == "" {
		cookie.MaxAge = -1
	}
	http.SetCookie(w, cookie)
}
