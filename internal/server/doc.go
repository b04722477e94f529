// Package server runs the HTTP server and the background workers of the
// helper market.
//
// It handles startup, signal handling and graceful shutdown.
package server
