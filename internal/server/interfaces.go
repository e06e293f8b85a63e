package server

import "context"

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// RunServer starts serving and blocks until ctx is cancelled or a
	// listener fails. The servers are shut down before it returns.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops all servers within ctx.
	Shutdown(ctx context.Context) error
}
