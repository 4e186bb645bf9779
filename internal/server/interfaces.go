package server

import "context"

// Server defines the lifecycle contract of the reference server.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context)
}

// BackgroundWorkers is the part of the workers pool the server drives.
type BackgroundWorkers interface {
	Run() error
	Stop(ctx context.Context)
}
