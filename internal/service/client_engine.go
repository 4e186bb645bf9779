// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
)

// Engine is the client context object. It is built once with its
// collaborators and must be initialized before any operation; until then
// every operation fails with [ErrEngineNotInitialized].
type Engine struct {
	services *ClientServices

	initialized atomic.Bool

	// jobCtx is the context the auto-sync job was last started with.
	jobMu  sync.Mutex
	jobCtx context.Context

	logger *logger.Logger
}

// NewEngine wraps services. Without a SyncJob in services the engine creates
// one that runs [Engine.PerformAutoSync].
func NewEngine(services *ClientServices, logger *logger.Logger) *Engine {
	e := &Engine{services: services, logger: logger}
	if services.SyncJob == nil {
		services.SyncJob = NewClientSyncJob(e, logger)
	}
	return e
}

// Init loads the persisted config and the version cache.
func (e *Engine) Init(ctx context.Context) error {
	if err := e.services.ConfigService.Load(ctx); err != nil {
		return fmt.Errorf("init engine: %w", err)
	}
	if err := e.services.VersionService.Load(ctx); err != nil {
		return fmt.Errorf("init engine: %w", err)
	}

	e.initialized.Store(true)
	e.logger.Debug().Strs("domains", e.services.ConfigService.ListDomains()).Msg("engine initialized")
	return nil
}

// reload picks up state written by other processes sharing the store since
// Init and retunes a running auto-sync job when the interval changed.
func (e *Engine) reload(ctx context.Context) error {
	prev := e.services.ConfigService.GetServerConfig().SyncInterval()

	if err := e.services.ConfigService.Load(ctx); err != nil {
		return err
	}
	if err := e.services.VersionService.Load(ctx); err != nil {
		return err
	}

	next := e.services.ConfigService.GetServerConfig().SyncInterval()
	if next != prev && e.services.SyncJob.Running() {
		e.services.SyncJob.Reset(next)
	}
	return nil
}

func (e *Engine) IsInitialized() bool {
	return e.initialized.Load()
}

func (e *Engine) ready() error {
	if !e.initialized.Load() {
		return ErrEngineNotInitialized
	}
	return nil
}

func (e *Engine) ServerConfig() (models.ServerConfig, error) {
	if err := e.ready(); err != nil {
		return models.ServerConfig{}, err
	}
	return e.services.ConfigService.GetServerConfig(), nil
}

// SaveServerConfig applies patch. With a server configured it makes sure a
// valid pass exists; the returned config then carries it. A running auto-sync
// job is restarted when the interval changed.
func (e *Engine) SaveServerConfig(ctx context.Context, patch models.ServerConfigPatch) (models.ServerConfig, error) {
	if err := e.ready(); err != nil {
		return models.ServerConfig{}, err
	}

	prev := e.services.ConfigService.GetServerConfig()
	next, err := e.services.ConfigService.UpdateServerConfig(ctx, patch)
	if err != nil {
		return prev, err
	}

	if next.HasServer() {
		if _, err = e.services.PassService.EnsurePass(ctx); err != nil {
			e.logger.Err(err).Str("func", "*Engine.SaveServerConfig").Msg("failed to ensure pass")
			return e.services.ConfigService.GetServerConfig(), err
		}
		next = e.services.ConfigService.GetServerConfig()
	}

	if next.SyncInterval() != prev.SyncInterval() && e.services.SyncJob.Running() {
		e.restartAutoSync(next)
	}
	return next, nil
}

func (e *Engine) DomainConfig(domain string) (models.DomainConfig, error) {
	if err := e.ready(); err != nil {
		return models.DomainConfig{}, err
	}
	return e.services.ConfigService.GetDomainConfig(domain), nil
}

// SaveDomainConfig keeps the last sync outcome of domain and replaces only
// its switches.
func (e *Engine) SaveDomainConfig(ctx context.Context, domain string, cookies, storage bool) (models.DomainConfig, error) {
	if err := e.ready(); err != nil {
		return models.DomainConfig{}, err
	}

	cfg := e.services.ConfigService.GetDomainConfig(domain)
	cfg.CookieSyncEnabled = cookies
	cfg.StorageSyncEnabled = storage
	if err := e.services.ConfigService.UpdateDomainConfig(ctx, domain, cfg); err != nil {
		return models.DomainConfig{}, err
	}

	if e.services.ConfigService.GetServerConfig().HasServer() {
		if _, err := e.services.PassService.EnsurePass(ctx); err != nil {
			e.logger.Warn().Err(err).Str("domain", domain).Msg("domain saved, but the pass could not be ensured")
		}
	}
	return cfg, nil
}

func (e *Engine) Domains() ([]string, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	return e.services.ConfigService.ListDomains(), nil
}

func (e *Engine) MaxValueLength() (int, error) {
	if err := e.ready(); err != nil {
		return 0, err
	}
	return e.services.ConfigService.MaxValueLength(), nil
}

func (e *Engine) SetMaxValueLength(ctx context.Context, n int) error {
	if err := e.ready(); err != nil {
		return err
	}
	return e.services.ConfigService.SetMaxValueLength(ctx, n)
}

func (e *Engine) CreatePass(ctx context.Context) (models.Pass, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	return e.services.PassService.CreatePass(ctx)
}

func (e *Engine) EnsurePass(ctx context.Context) (models.Pass, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	return e.services.PassService.EnsurePass(ctx)
}

func (e *Engine) SyncDomain(ctx context.Context, domain string) models.SyncResult {
	if err := e.ready(); err != nil {
		return models.FailedResult(domain, err)
	}
	return e.services.SyncService.SyncDomain(ctx, domain)
}

func (e *Engine) ForceUpload(ctx context.Context, domain string) models.SyncResult {
	if err := e.ready(); err != nil {
		return models.FailedResult(domain, err)
	}
	return e.services.SyncService.ForceUpload(ctx, domain)
}

func (e *Engine) ForceDownload(ctx context.Context, domain string) models.SyncResult {
	if err := e.ready(); err != nil {
		return models.FailedResult(domain, err)
	}
	return e.services.SyncService.ForceDownload(ctx, domain)
}

// PerformAutoSync reloads the persisted state, then syncs the active domain.
// A failed reload is logged and the in-memory state is used.
func (e *Engine) PerformAutoSync(ctx context.Context) models.SyncResult {
	if err := e.ready(); err != nil {
		return models.FailedResult("", err)
	}
	if err := e.reload(ctx); err != nil {
		e.logger.Warn().Err(err).Str("func", "*Engine.PerformAutoSync").Msg("failed to reload persisted state")
	}
	return e.services.SyncService.PerformAutoSync(ctx)
}

func (e *Engine) VersionHistory(ctx context.Context, domain string, limit int) ([]models.VersionInfo, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	return e.services.SyncService.VersionHistory(ctx, domain, limit)
}

func (e *Engine) RestoreVersion(ctx context.Context, domain, versionID string) models.SyncResult {
	if err := e.ready(); err != nil {
		return models.FailedResult(domain, err)
	}
	return e.services.SyncService.RestoreVersion(ctx, domain, versionID)
}

func (e *Engine) DeleteRemoteData(ctx context.Context, domain, versionID string) (int64, error) {
	if err := e.ready(); err != nil {
		return 0, err
	}
	return e.services.SyncService.DeleteRemoteData(ctx, domain, versionID)
}

func (e *Engine) QuickAccessURL(ctx context.Context, domain string) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	return e.services.SyncService.QuickAccessURL(ctx, domain)
}

func (e *Engine) CopyQuickAccessURL(ctx context.Context, domain string) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	return e.services.SyncService.CopyQuickAccessURL(ctx, domain)
}

func (e *Engine) TestServerConnection(ctx context.Context) (models.HealthResponse, error) {
	if err := e.ready(); err != nil {
		return models.HealthResponse{}, err
	}
	return e.services.SyncService.TestServerConnection(ctx)
}

func (e *Engine) Stats(ctx context.Context) (models.PassStatsResponse, error) {
	if err := e.ready(); err != nil {
		return models.PassStatsResponse{}, err
	}
	return e.services.SyncService.Stats(ctx)
}

func (e *Engine) ActiveDomain(ctx context.Context) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	return e.services.SnapshotService.ActiveDomain(ctx)
}

// StartAutoSync starts the background job with the configured interval.
func (e *Engine) StartAutoSync(ctx context.Context) error {
	if err := e.ready(); err != nil {
		return err
	}

	e.jobMu.Lock()
	e.jobCtx = ctx
	e.jobMu.Unlock()

	e.services.SyncJob.Start(ctx, e.services.ConfigService.GetServerConfig().SyncInterval())
	return nil
}

func (e *Engine) restartAutoSync(cfg models.ServerConfig) {
	e.jobMu.Lock()
	ctx := e.jobCtx
	e.jobMu.Unlock()

	if ctx == nil {
		ctx = context.Background()
	}
	e.logger.Info().Dur("interval", cfg.SyncInterval()).Msg("sync interval changed, restarting auto sync")
	e.services.SyncJob.Start(ctx, cfg.SyncInterval())
}

func (e *Engine) StopAutoSync() {
	e.services.SyncJob.Stop()
}

func (e *Engine) AutoSyncRunning() bool {
	return e.services.SyncJob.Running()
}
