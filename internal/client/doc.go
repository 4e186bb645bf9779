// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the sync engine from the client configuration
// and runs it as a daemon: the periodic auto-sync job plus a sync of the
// active domain whenever the host profile changes.
package client
