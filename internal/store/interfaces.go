package store

import (
	"context"

	"github.com/MKhiriev/go-pass-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PassRepository keeps the passes minted by the server.
type PassRepository interface {
	CreatePass(ctx context.Context, pass models.Pass) (models.StoredPass, error)
	FindPass(ctx context.Context, pass models.Pass) (models.StoredPass, error)
	ListPassSummaries(ctx context.Context) ([]models.PassSummary, error)
	// DeletePass removes the pass with all of its entries and reports how
	// many entries went with it.
	DeletePass(ctx context.Context, pass models.Pass) (int64, error)
}

// DataRepository keeps the uploaded payloads, one row per version.
type DataRepository interface {
	SaveData(ctx context.Context, entry models.DataEntry) (models.DataEntry, error)
	LatestData(ctx context.Context, pass models.Pass, domain string) (models.DataEntry, error)
	// ListVersions returns entries newest first without their data.
	ListVersions(ctx context.Context, pass models.Pass, domain string, limit int) ([]models.DataEntry, error)
	GetVersion(ctx context.Context, pass models.Pass, domain string, id int64) (models.DataEntry, error)
	// DeleteData removes one version, or every version of the domain when
	// id is 0.
	DeleteData(ctx context.Context, pass models.Pass, domain string, id int64) (int64, error)
	// PruneVersions keeps the newest keep entries of one (pass, domain).
	PruneVersions(ctx context.Context, pass models.Pass, domain string, keep int) (int64, error)
	// PruneAll applies PruneVersions to every (pass, domain) at once.
	PruneAll(ctx context.Context, keep int) (int64, error)
	ListDomains(ctx context.Context, pass models.Pass) ([]string, error)
	PassStats(ctx context.Context, pass models.Pass) (models.PassStats, error)
	ServerStats(ctx context.Context) (models.ServerStats, error)
}
