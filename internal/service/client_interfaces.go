package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-sync/models"
)

// ClientConfigService owns ServerConfig, the per-domain configs and the value
// length limit. Reads are served from memory. Writes merge into the persisted
// state, which other processes may have changed since Load.
type ClientConfigService interface {
	Load(ctx context.Context) error

	GetServerConfig() models.ServerConfig
	UpdateServerConfig(ctx context.Context, patch models.ServerConfigPatch) (models.ServerConfig, error)

	// GetDomainConfig returns the stored config or the all-disabled default.
	GetDomainConfig(domain string) models.DomainConfig
	UpdateDomainConfig(ctx context.Context, domain string, cfg models.DomainConfig) error
	// MarkSynced records the outcome of a sync without touching the
	// domain's switches.
	MarkSynced(ctx context.Context, domain string, at time.Time, source models.SyncSource) error
	ListDomains() []string

	MaxValueLength() int
	SetMaxValueLength(ctx context.Context, n int) error
}

// ClientPassService manages the pass of the configured server.
type ClientPassService interface {
	CreatePass(ctx context.Context) (models.Pass, error)
	ValidatePass(ctx context.Context, pass models.Pass) (bool, error)
	// EnsurePass returns a pass the server accepts, minting a new one when
	// none is configured or the current one is unknown to the server.
	EnsurePass(ctx context.Context) (models.Pass, error)
}

// ClientSnapshotService reads and writes domain state through the host.
type ClientSnapshotService interface {
	CaptureLocal(ctx context.Context, domain string) (models.Snapshot, error)
	ApplyRemote(ctx context.Context, domain string, snapshot models.Snapshot) error
	// ActiveDomain returns the domain of the host's active document, or ""
	// when there is none.
	ActiveDomain(ctx context.Context) (string, error)
}

// ClientVersionService is the local cache of historical snapshot parts.
type ClientVersionService interface {
	Load(ctx context.Context) error
	AddVersion(ctx context.Context, domain string, t models.VersionType, entry models.VersionEntry) error
	// ListVersions returns up to limit entries, newest first. A non-positive
	// limit returns all of them.
	ListVersions(domain string, t models.VersionType, limit int) []models.VersionEntry
	// Find looks an entry up by id across both types of domain.
	Find(domain, id string) (models.VersionEntry, bool)
	Snapshot() map[string][]models.VersionEntry
}

// ClientSyncService coordinates a domain between the host and the server.
// Failures are reported inside [models.SyncResult].
type ClientSyncService interface {
	SyncDomain(ctx context.Context, domain string) models.SyncResult
	ForceUpload(ctx context.Context, domain string) models.SyncResult
	ForceDownload(ctx context.Context, domain string) models.SyncResult
	PerformAutoSync(ctx context.Context) models.SyncResult

	VersionHistory(ctx context.Context, domain string, limit int) ([]models.VersionInfo, error)
	RestoreVersion(ctx context.Context, domain, versionID string) models.SyncResult
	DeleteRemoteData(ctx context.Context, domain, versionID string) (int64, error)

	QuickAccessURL(ctx context.Context, domain string) (string, error)
	CopyQuickAccessURL(ctx context.Context, domain string) (string, error)
	TestServerConnection(ctx context.Context) (models.HealthResponse, error)
	Stats(ctx context.Context) (models.PassStatsResponse, error)
}

// ClientSyncJob runs auto sync in the background.
type ClientSyncJob interface {
	// Start replaces any running job with one ticking every interval.
	Start(ctx context.Context, interval time.Duration)
	// Reset changes the interval of a running job; it is a no-op otherwise.
	Reset(interval time.Duration)
	// Stop cancels the job and waits for it to exit.
	Stop()
	Running() bool
}

// autoSyncer is the part of [ClientSyncService] the job depends on.
type autoSyncer interface {
	PerformAutoSync(ctx context.Context) models.SyncResult
}
