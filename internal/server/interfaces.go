package server

import "context"

// Server is the lifecycle contract of the backend transport.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down.
	RunServer()

	// Run serves until ctx is done and then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown stops accepting requests, closes live feeds and waits for
	// in-flight requests.
	Shutdown()
}
