package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives,
	// then shuts down gracefully.
	RunServer() error

	// Serve serves requests until ctx is cancelled or the listener fails.
	Serve(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
