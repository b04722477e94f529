// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package guard decides, before any page handler runs, whether a request
// may proceed based only on the presence of the session cookie.
//
// The cookie value is never decoded or validated here. A stale cookie lets
// the request through; handlers behind the guard verify the session with
// the identity backend and redirect again when it turns out to be invalid.
package guard

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-helper-market/internal/logger"
)

// Default paths used when [Rules] leaves them empty.
const (
	DefaultLoginPath     = "/login"
	DefaultDashboardPath = "/dashboard"
)

// CookieName returns the name of the session cookie for a backend project.
func CookieName(projectID string) string {
	return "a_session_" + projectID
}

// Rules lists guarded path prefixes.
type Rules struct {
	// Protected prefixes require a session cookie.
	Protected []string

	// AuthOnly prefixes are pages for anonymous visitors (login, signup).
	AuthOnly []string

	LoginPath     string
	DashboardPath string
}

// Decision is the outcome of [Rules.Evaluate]. An empty RedirectTo means
// the request passes.
type Decision struct {
	RedirectTo string
}

// Pass reports whether the request may continue.
func (d Decision) Pass() bool {
	return d.RedirectTo == ""
}

// Evaluate applies the rules to a request path.
//
//   - protected path without a session: redirect to the login page with the
//     original path in the "redirect" query parameter;
//   - auth-only path with a session: redirect to the dashboard;
//   - anything else passes.
func (r Rules) Evaluate(path string, hasSession bool) Decision {
	if !hasSession && matchesAny(path, r.Protected) {
		return Decision{RedirectTo: LoginRedirect(r.loginPath(), path)}
	}

	if hasSession && matchesAny(path, r.AuthOnly) {
		return Decision{RedirectTo: r.dashboardPath()}
	}

	return Decision{}
}

// IsProtected reports whether path falls under a protected prefix.
func (r Rules) IsProtected(path string) bool {
	return matchesAny(path, r.Protected)
}

// IsAuthOnly reports whether path falls under an auth-only prefix.
func (r Rules) IsAuthOnly(path string) bool {
	return matchesAny(path, r.AuthOnly)
}

func (r Rules) loginPath() string {
	if r.LoginPath == "" {
		return DefaultLoginPath
	}
	return r.LoginPath
}

func (r Rules) dashboardPath() string {
	if r.DashboardPath == "" {
		return DefaultDashboardPath
	}
	return r.DashboardPath
}

// LoginRedirect builds "<loginPath>?redirect=<escaped path>".
func LoginRedirect(loginPath, path string) string {
	return loginPath + "?redirect=" + url.QueryEscape(path)
}

// matchesAny reports whether path equals a prefix or continues it with a
// new segment, so "/dashboard" matches "/dashboard/x" but not "/dashboardx".
func matchesAny(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		prefix = strings.TrimSuffix(prefix, "/")
		if prefix == "" {
			continue
		}
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}

	return false
}

// HasSession reports whether r carries a non-empty session cookie.
func HasSession(r *http.Request, cookieName string) bool {
	cookie, err := r.Cookie(cookieName)
	return err == nil && cookie.Value != ""
}

// IsNavigation reports whether r is a page load (GET or HEAD) rather than a
// form post or API call.
func IsNavigation(r *http.Request) bool {
	return r.Method == http.MethodGet || r.Method == http.MethodHead
}

// RedirectStatus is 307 for navigations and 303 for everything else, so a
// redirected form post arrives at its target as a GET.
func RedirectStatus(r *http.Request) int {
	if IsNavigation(r) {
		return http.StatusTemporaryRedirect
	}
	return http.StatusSeeOther
}

// Middleware redirects requests according to rules using only the presence
// of the named cookie.
//
// Auth-only rules apply to navigations only: a login or signup form posted
// with a stale cookie must reach its handler, which replaces the cookie.
func Middleware(rules Rules, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hasSession := HasSession(r, cookieName)
			if hasSession && !IsNavigation(r) && rules.IsAuthOnly(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			decision := rules.Evaluate(r.URL.Path, hasSession)
			if decision.Pass() {
				next.ServeHTTP(w, r)
				return
			}

			logger.FromRequest(r).Debug().
				Str("path", r.URL.Path).
				Str("method", r.Method).
				Str("redirect_to", decision.RedirectTo).
				Msg("guard redirect")
			http.Redirect(w, r, decision.RedirectTo, RedirectStatus(r))
		})
	}
}
