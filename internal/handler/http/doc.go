// Package http implements the browser-facing HTTP layer of the helper
// market.
//
// It wires the chi router, the session-cookie guard, the request-scoped auth
// provider and the page handlers. Handlers answer with JSON documents that
// describe the page state; rendering happens elsewhere.
package http
