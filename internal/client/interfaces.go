// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Daemon is the long-running mode of the client.
type Daemon interface {
	// RunDaemon blocks until ctx is done.
	RunDaemon(ctx context.Context) error
	Close() error
}

var _ Daemon = (*App)(nil)
