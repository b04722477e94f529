package server

import "context"

// Server owns the HTTP listener and the background workers of the process.
type Server interface {
	// RunServer blocks until SIGTERM, SIGINT or SIGQUIT, then drains
	// in-flight requests and waits for the workers to return.
	RunServer()

	// Shutdown stops the HTTP listener only.
	Shutdown()
}

// BackgroundRunner is a set of workers that stop when ctx is cancelled.
type BackgroundRunner interface {
	Run(ctx context.Context)
}
