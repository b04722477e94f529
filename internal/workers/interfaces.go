// Package workers runs the background jobs of the helper market next to the
// HTTP server.
//
// A Worker blocks in Run until its context is cancelled. Workers starts all
// of them and waits for every one to return.
package workers

import "context"

// Worker is a background job.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
