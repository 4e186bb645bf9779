// Package server wires and runs the reference Pass server.
//
// It owns the HTTP listener and the background workers, starts both, waits
// for a stop signal, and shuts them down gracefully.
package server
