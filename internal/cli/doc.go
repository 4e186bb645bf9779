// Package cli implements the pass-sync command line.
//
// Every command opens the client app (state store, host profile and engine)
// from the layered client configuration, runs one engine operation and
// prints the outcome as text or, with --output json, as JSON. The tui and
// daemon commands hand the same app to the dashboard and the watcher.
package cli
