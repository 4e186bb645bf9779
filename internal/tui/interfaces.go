package tui

import (
	"context"

	"github.com/MKhiriev/go-pass-sync/models"
)

// Engine is the part of the sync engine the dashboard drives.
type Engine interface {
	ServerConfig() (models.ServerConfig, error)
	Domains() ([]string, error)
	DomainConfig(domain string) (models.DomainConfig, error)
	SaveDomainConfig(ctx context.Context, domain string, cookies, storage bool) (models.DomainConfig, error)
	ActiveDomain(ctx context.Context) (string, error)

	SyncDomain(ctx context.Context, domain string) models.SyncResult
	ForceUpload(ctx context.Context, domain string) models.SyncResult
	ForceDownload(ctx context.Context, domain string) models.SyncResult

	VersionHistory(ctx context.Context, domain string, limit int) ([]models.VersionInfo, error)
	RestoreVersion(ctx context.Context, domain, versionID string) models.SyncResult
	CopyQuickAccessURL(ctx context.Context, domain string) (string, error)
}
