package http

import (
	"net/http"

	"github.com/MKhiriev/go-helper-market/internal/authctx"
)

// writeSessionCookie stores the session created during the request, or
// removes the cookie after a logout.
func (h *Handler) writeSessionCookie(w http.ResponseWriter, p *authctx.Provider) {
	if session, ok := p.Session(); ok {
		cookie := &http.Cookie{
			Name:     h.cookieName,
			Value:    session.Secret,
			Path:     "/",
			HttpOnly: true,
			Secure:   h.cookieSecure,
			SameSite: http.SameSiteLaxMode,
		}
		if !session.Expire.IsZero() {
			cookie.Expires = session.Expire
		}
		http.SetCookie(w, cookie)
		return
	}

	if p.SessionCleared() {
		h.clearSessionCookie(w)
	}
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
