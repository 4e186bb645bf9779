package service

import (
	"context"

	"github.com/MKhiriev/go-pass-sync/models"
)

// PassService mints and looks up passes on the server.
type PassService interface {
	CreatePass(ctx context.Context) (models.StoredPass, error)
	// CheckPass reports Exists=false for unknown passes instead of failing.
	CheckPass(ctx context.Context, pass models.Pass) (models.PassInfo, error)
}

// DataService stores the uploaded payloads of a pass, one entry per version.
type DataService interface {
	Upload(ctx context.Context, entry models.DataEntry) (models.DataEntry, error)
	Latest(ctx context.Context, pass models.Pass, domain string) (models.DataEntry, error)
	ListVersions(ctx context.Context, pass models.Pass, domain string, limit int) ([]models.DataEntry, error)
	GetVersion(ctx context.Context, pass models.Pass, domain, versionID string) (models.DataEntry, error)
	// Delete removes one version, or all of them when versionID is empty.
	Delete(ctx context.Context, pass models.Pass, domain, versionID string) (int64, error)
	PassStats(ctx context.Context, pass models.Pass) (models.PassStats, error)
	ServerStats(ctx context.Context) (models.ServerStats, error)
	QuickAccess(ctx context.Context, pass models.Pass, domain, key string) (models.QuickAccess, error)
	// Prune trims every domain to the configured version limit.
	Prune(ctx context.Context) (int64, error)
}

// AdminService guards the admin endpoints.
type AdminService interface {
	Login(ctx context.Context, ip, password string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ListPasses(ctx context.Context) ([]models.PassSummary, error)
	DeletePass(ctx context.Context, pass models.Pass) (int64, error)
}

// AppInfoService describes the running server to clients.
type AppInfoService interface {
	// Health reports the build version and the range of client protocol
	// versions the server accepts.
	Health(ctx context.Context) models.HealthResponse
	// AcceptsClient reports whether a client speaking protocol version v is
	// within the advertised range.
	AcceptsClient(v string) bool
}

// DataServiceWrapper defines middleware composition for DataService.
// Implementations wrap an existing DataService to add behavior such as
// validating.
type DataServiceWrapper interface {
	Wrap(DataService) DataService
}
