package server

import "context"

// Server defines the lifecycle contract of the servers managed by this
// package.
type Server interface {
	// Listen binds the listening socket without accepting connections.
	Listen() error

	// Serve accepts connections on the bound socket and blocks until the
	// server stops.
	Serve() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
