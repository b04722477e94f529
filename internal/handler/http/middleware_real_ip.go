package http

import (
	"net/http"
	"net/netip"

	"github.com/go-chi/chi/v5/middleware"
)

// withRealIP applies chi's RealIP only for requests that come from a
// trusted proxy. Any other peer could forge X-Forwarded-For and get a fresh
// rate-limit bucket per request.
func (h *Handler) withRealIP(next http.Handler) http.Handler {
	realIP := middleware.RealIP(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.fromTrustedProxy(r) {
			realIP.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) fromTrustedProxy(r *http.Request) bool {
	if len(h.trustedProxies) == 0 {
		return false
	}

	addr, err := netip.ParseAddr(clientIP(r))
	if err != nil {
		return false
	}
	addr = addr.Unmap()

	for _, prefix := range h.trustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
