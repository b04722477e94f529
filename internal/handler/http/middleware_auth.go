package http

import (
	"net/http"

	"github.com/MKhiriev/go-helper-market/internal/authctx"
	"github.com/MKhiriev/go-helper-market/internal/guard"
	"github.com/MKhiriev/go-helper-market/internal/logger"
	"github.com/MKhiriev/go-helper-market/internal/utils"
)

// withAuthProvider puts the session secret from the cookie and a fresh
// [authctx.Provider] into the request context. The provider does not call
// the backend until a handler asks for the user.
func (h *Handler) withAuthProvider(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if cookie, err := r.Cookie(h.cookieName); err == nil {
			ctx = utils.WithSessionSecret(ctx, cookie.Value)
		}

		ctx = authctx.WithProvider(ctx, authctx.NewProvider(h.services.AuthService))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// provider returns the request's provider, creating one when the request
// did not pass through withAuthProvider.
func (h *Handler) provider(r *http.Request) *authctx.Provider {
	if p, ok := authctx.FromContext(r.Context()); ok {
		return p
	}
	return authctx.NewProvider(h.services.AuthService)
}

// requireUser lets the request through only after the session was verified
// with the identity backend. A stale cookie is removed before redirecting
// to the login page, otherwise the cookie guard would send the browser
// straight back.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := h.provider(r).Init(r.Context())
		if state.IsAuthenticated() {
			next.ServeHTTP(w, r)
			return
		}

		if guard.HasSession(r, h.cookieName) {
			logger.FromRequest(r).Debug().Msg("stale session cookie removed")
			h.clearSessionCookie(w)
		}
		http.Redirect(w, r, guard.LoginRedirect(h.rules.LoginPath, r.URL.Path), guard.RedirectStatus(r))
	})
}

// redirectIfUser sends verified users away from pages meant for anonymous
// visitors.
func (h *Handler) redirectIfUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !guard.HasSession(r, h.cookieName) {
			next.ServeHTTP(w, r)
			return
		}

		if h.provider(r).Init(r.Context()).IsAuthenticated() {
			http.Redirect(w, r, h.rules.DashboardPath, guard.RedirectStatus(r))
			return
		}

		h.clearSessionCookie(w)
		next.ServeHTTP(w, r)
	})
}
