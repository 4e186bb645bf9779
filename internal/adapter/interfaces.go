// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport client of the sync engine.
//
// [ServerAdapter] hides the HTTP/JSON protocol of the Pass server from the
// service layer. It is stateless with respect to its target: every call takes
// the server URL and, where needed, the pass, so a configuration change never
// requires rebuilding the adapter.
//
// Failures come in two kinds. Network errors and timeouts are wrapped in
// [ErrUnreachable]. Non-2xx answers become an [*HTTPError] that matches
// [ErrRejected] as well as the per-status sentinel ([ErrNotFound],
// [ErrBadRequest], ...) under [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with a Pass server.
type ServerAdapter interface {
	// Health queries GET /health.
	Health(ctx context.Context, serverURL string) (models.HealthResponse, error)

	// CreatePass mints a new pass on the server.
	CreatePass(ctx context.Context, serverURL string) (models.Pass, error)

	// CheckPass asks whether pass is known to the server. A missing pass is
	// reported either as Exists=false or as an error matching [ErrNotFound],
	// depending on the server version.
	CheckPass(ctx context.Context, serverURL string, pass models.Pass) (models.CheckPassResponse, error)

	// FetchData returns the newest record stored for domain, or nil when the
	// server has nothing (HTTP 404).
	FetchData(ctx context.Context, serverURL string, pass models.Pass, domain string) (*models.RemoteData, error)

	// UploadData stores payload as the newest record for domain.
	UploadData(ctx context.Context, serverURL string, pass models.Pass, domain, payload string) (models.UploadDataResponse, error)

	// ListVersions returns up to limit version descriptors for domain, newest
	// first. A limit of zero leaves the choice to the server.
	ListVersions(ctx context.Context, serverURL string, pass models.Pass, domain string, limit int) ([]models.RemoteVersion, error)

	// FetchVersion returns one historical record by id.
	FetchVersion(ctx context.Context, serverURL string, pass models.Pass, domain, id string) (*models.RemoteData, error)

	// DeleteData removes every record for domain, or only versionID when it
	// is not empty. It returns the number of deleted records.
	DeleteData(ctx context.Context, serverURL string, pass models.Pass, domain, versionID string) (int64, error)

	// Stats returns per-pass usage.
	Stats(ctx context.Context, serverURL string, pass models.Pass) (models.PassStatsResponse, error)

	// QuickAccessURL builds the link of the quick-access page for domain.
	// No request is made.
	QuickAccessURL(serverURL string, pass models.Pass, domain, key string) (string, error)
}
