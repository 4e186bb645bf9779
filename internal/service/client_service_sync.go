// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-sync/internal/host"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/utils"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/atotto/clipboard"
	"github.com/hashicorp/go-version"
	"golang.org/x/sync/singleflight"
)

// SupportedServerVersions is the range of server versions the client speaks to.
const SupportedServerVersions = ">= 1.0.0, < 2.0.0"

type syncMode int

const (
	modeDecide syncMode = iota
	modeForceUpload
	modeForceDownload
)

func (m syncMode) String() string {
	switch m {
	case modeForceUpload:
		return "force-upload"
	case modeForceDownload:
		return "force-download"
	default:
		return "sync"
	}
}

type clientSyncService struct {
	config        ClientConfigService
	snapshots     ClientSnapshotService
	versions      ClientVersionService
	serverAdapter adapter.ServerAdapter

	codec  crypto.Codec
	params crypto.ArgonParams
	ids    *utils.UUIDGenerator

	// flight collapses identical concurrent calls, locks serializes
	// different operations on the same domain.
	flight singleflight.Group
	locks  domainLocks

	now       func() time.Time
	copyText  func(string) error
	supported version.Constraints

	logger *logger.Logger
}

// NewClientSyncService wires the coordinator. codec seals uploads; downloads
// are opened with whichever scheme produced them.
func NewClientSyncService(
	config ClientConfigService,
	snapshots ClientSnapshotService,
	versions ClientVersionService,
	serverAdapter adapter.ServerAdapter,
	codec crypto.Codec,
	params crypto.ArgonParams,
	logger *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		config:        config,
		snapshots:     snapshots,
		versions:      versions,
		serverAdapter: serverAdapter,
		codec:         codec,
		params:        params,
		ids:           utils.NewUUIDGenerator(),
		now:           func() time.Time { return time.Now().UTC() },
		copyText:      clipboard.WriteAll,
		supported:     version.MustConstraints(version.NewConstraint(SupportedServerVersions)),
		logger:        logger,
	}
}

type domainLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (d *domainLocks) lock(domain string) func() {
	d.mu.Lock()
	if d.locks == nil {
		d.locks = map[string]*sync.Mutex{}
	}
	l, ok := d.locks[domain]
	if !ok {
		l = &sync.Mutex{}
		d.locks[domain] = l
	}
	d.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// DecideDirection picks the direction for a domain from the masked local
// snapshot, the remote record (nil when the server has none) and the domain
// config.
func DecideDirection(local models.Snapshot, remote *models.RemoteData, cfg models.DomainConfig) (models.Decision, error) {
	if remote == nil {
		return models.Decision{Action: models.ActionUpload, Reason: models.ReasonNoRemoteData}, nil
	}
	if cfg.LastSyncTime == nil {
		return models.Decision{Action: models.ActionDownload, Reason: models.ReasonFirstSync}, nil
	}

	localHash, err := crypto.Hash(local.Content())
	if err != nil {
		return models.Decision{}, fmt.Errorf("hash local snapshot: %w", err)
	}
	remoteHash, err := crypto.Hash(remote.Snapshot.Content())
	if err != nil {
		return models.Decision{}, fmt.Errorf("hash remote snapshot: %w", err)
	}
	if localHash == remoteHash {
		return models.Decision{Action: models.ActionNone, Reason: models.ReasonIdentical}, nil
	}

	if remote.Timestamp.After(*cfg.LastSyncTime) {
		return models.Decision{Action: models.ActionDownload, Reason: models.ReasonRemoteNewer}, nil
	}
	return models.Decision{Action: models.ActionUpload, Reason: models.ReasonLocalNewer}, nil
}

func (s *clientSyncService) SyncDomain(ctx context.Context, domain string) models.SyncResult {
	return s.run(ctx, domain, modeDecide)
}

func (s *clientSyncService) ForceUpload(ctx context.Context, domain string) models.SyncResult {
	return s.run(ctx, domain, modeForceUpload)
}

func (s *clientSyncService) ForceDownload(ctx context.Context, domain string) models.SyncResult {
	return s.run(ctx, domain, modeForceDownload)
}

func (s *clientSyncService) run(ctx context.Context, domain string, mode syncMode) models.SyncResult {
	domain = host.NormalizeDomain(domain)

	// the run is shared by every caller of the same key, so it must not end
	// when the first caller gives up
	runCtx := context.WithoutCancel(ctx)
	ch := s.flight.DoChan(mode.String()+":"+domain, func() (any, error) {
		unlock := s.locks.lock(domain)
		defer unlock()
		return s.syncDomain(runCtx, domain, mode), nil
	})

	select {
	case res := <-ch:
		return res.Val.(models.SyncResult)
	case <-ctx.Done():
		return models.FailedResult(domain, ctx.Err())
	}
}

func (s *clientSyncService) syncDomain(ctx context.Context, domain string, mode syncMode) models.SyncResult {
	log := s.logger.With().Str("domain", domain).Str("mode", mode.String()).Logger()

	domainCfg := s.config.GetDomainConfig(domain)
	if !domainCfg.Enabled() {
		return models.SkippedResult(domain, models.ReasonSyncDisabled)
	}
	serverCfg := s.config.GetServerConfig()
	if !serverCfg.Ready() {
		return models.SkippedResult(domain, models.ReasonNoServerConfigured)
	}

	local, err := s.snapshots.CaptureLocal(ctx, domain)
	if err != nil {
		log.Err(err).Msg("failed to capture local state")
		return models.FailedResult(domain, err)
	}
	local = local.Masked(domainCfg)

	remote, err := s.serverAdapter.FetchData(ctx, serverCfg.ServerURL, serverCfg.Pass, domain)
	if err != nil {
		log.Err(err).Msg("failed to fetch remote data")
		return models.FailedResult(domain, mapAdapterError(err))
	}
	if remote != nil {
		// a forced upload overwrites whatever the server holds
		if err = s.openRemote(remote, serverCfg, domainCfg); err != nil && mode != modeForceUpload {
			log.Err(err).Msg("failed to decode remote data")
			return models.FailedResult(domain, err)
		}
	}

	var decision models.Decision
	switch mode {
	case modeForceUpload:
		decision = models.Decision{Action: models.ActionUpload, Reason: models.ReasonForced}
	case modeForceDownload:
		if remote == nil {
			return models.SyncResult{Domain: domain, Reason: models.ReasonNoRemoteData, Error: models.ReasonNoRemoteData}
		}
		decision = models.Decision{Action: models.ActionDownload, Reason: models.ReasonForced}
	default:
		decision, err = DecideDirection(local, remote, domainCfg)
		if err != nil {
			return models.FailedResult(domain, err)
		}
	}

	var moved models.Snapshot
	switch decision.Action {
	case models.ActionUpload:
		if err = s.upload(ctx, serverCfg, domain, local); err != nil {
			log.Err(err).Msg("upload failed")
			return models.FailedResult(domain, err)
		}
		moved = local
	case models.ActionDownload:
		if err = s.snapshots.ApplyRemote(ctx, domain, remote.Snapshot); err != nil {
			log.Err(err).Msg("failed to apply remote data")
			return models.FailedResult(domain, err)
		}
		moved = remote.Snapshot
	}

	if err = s.recordOutcome(ctx, domain, domainCfg, serverCfg, decision.Action, moved); err != nil {
		return models.FailedResult(domain, err)
	}

	log.Info().Str("action", string(decision.Action)).Str("reason", decision.Reason).Msg("domain synced")
	return models.Succeeded(domain, decision)
}

// openRemote decrypts the payload and fills remote.Snapshot with the
// categories enabled in domainCfg.
func (s *clientSyncService) openRemote(remote *models.RemoteData, serverCfg models.ServerConfig, domainCfg models.DomainConfig) error {
	raw, err := crypto.Open(remote.Payload, serverCfg.ActiveKey(), s.params)
	if err != nil {
		return err
	}

	snapshot, err := models.DecodeSnapshot(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}

	if remote.Timestamp.IsZero() {
		remote.Timestamp = snapshot.Timestamp
	}
	remote.Snapshot = snapshot.Masked(domainCfg)
	return nil
}

func (s *clientSyncService) upload(ctx context.Context, serverCfg models.ServerConfig, domain string, snapshot models.Snapshot) error {
	payload, err := s.codec.Encrypt(snapshot, serverCfg.ActiveKey())
	if err != nil {
		return fmt.Errorf("encrypt snapshot: %w", err)
	}

	if _, err = s.serverAdapter.UploadData(ctx, serverCfg.ServerURL, serverCfg.Pass, domain, payload); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

// recordOutcome stamps the domain config and, when data moved, appends one
// version entry per enabled category.
func (s *clientSyncService) recordOutcome(
	ctx context.Context,
	domain string,
	domainCfg models.DomainConfig,
	serverCfg models.ServerConfig,
	action models.SyncAction,
	moved models.Snapshot,
) error {
	now := s.now()
	source := models.SourceLocal
	if action == models.ActionDownload {
		source = models.SourceServer
	}

	if err := s.config.MarkSynced(ctx, domain, now, source); err != nil {
		return err
	}

	if action == models.ActionNone {
		return nil
	}

	for _, t := range domainCfg.EnabledTypes() {
		entry, err := s.newVersionEntry(domain, t, source, now, moved.Part(t), serverCfg.ActiveKey())
		if err != nil {
			return err
		}
		if err = s.versions.AddVersion(ctx, domain, t, entry); err != nil {
			// history is best effort, the sync itself succeeded
			s.logger.Warn().Err(err).Str("domain", domain).Msg("failed to record version")
		}
	}
	return nil
}

func (s *clientSyncService) newVersionEntry(domain string, t models.VersionType, source models.SyncSource, at time.Time, part map[string]string, key string) (models.VersionEntry, error) {
	if part == nil {
		part = map[string]string{}
	}

	hash, err := crypto.Hash(part)
	if err != nil {
		return models.VersionEntry{}, fmt.Errorf("hash version: %w", err)
	}
	payload, err := s.codec.Encrypt(part, key)
	if err != nil {
		return models.VersionEntry{}, fmt.Errorf("encrypt version: %w", err)
	}

	return models.VersionEntry{
		ID:          s.ids.Generate(),
		Domain:      domain,
		Type:        t,
		Source:      source,
		Timestamp:   at,
		Payload:     payload,
		Encrypted:   key != "",
		ContentHash: hash,
	}, nil
}

// PerformAutoSync syncs the active domain when it has sync enabled. Failures
// are logged and returned in the result.
func (s *clientSyncService) PerformAutoSync(ctx context.Context) models.SyncResult {
	domain, err := s.snapshots.ActiveDomain(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("auto sync could not read the active domain")
		return models.FailedResult("", err)
	}
	if domain == "" {
		return models.SkippedResult("", models.ReasonNoActiveDomain)
	}
	if !s.config.GetDomainConfig(domain).Enabled() {
		return models.SkippedResult(domain, models.ReasonSyncDisabled)
	}

	result := s.SyncDomain(ctx, domain)
	if !result.Success && !result.Skipped {
		s.logger.Warn().Str("domain", domain).Str("error", result.Error).Msg("auto sync failed")
	}
	return result
}

// VersionHistory lists server versions and falls back to the local cache
// when no server is configured or it cannot be reached.
func (s *clientSyncService) VersionHistory(ctx context.Context, domain string, limit int) ([]models.VersionInfo, error) {
	domain = host.NormalizeDomain(domain)
	cfg := s.config.GetServerConfig()

	if cfg.Ready() {
		remote, err := s.serverAdapter.ListVersions(ctx, cfg.ServerURL, cfg.Pass, domain, limit)
		switch {
		case err == nil:
			infos := make([]models.VersionInfo, 0, len(remote))
			for _, v := range remote {
				infos = append(infos, models.VersionInfo{
					ID:        v.ID,
					Timestamp: v.Timestamp.Time,
					Size:      v.Size,
					Source:    models.SourceServer,
				})
			}
			return infos, nil
		case errors.Is(err, adapter.ErrUnreachable):
			s.logger.Warn().Err(err).Str("domain", domain).Msg("server unreachable, listing cached versions")
		default:
			return nil, mapAdapterError(err)
		}
	}

	return s.localHistory(domain, limit), nil
}

func (s *clientSyncService) localHistory(domain string, limit int) []models.VersionInfo {
	var infos []models.VersionInfo
	for _, t := range []models.VersionType{models.VersionCookie, models.VersionKeyValueStore} {
		for _, e := range s.versions.ListVersions(domain, t, 0) {
			infos = append(infos, models.VersionInfo{
				ID:        e.ID,
				Timestamp: e.Timestamp,
				Size:      len(e.Payload),
				Source:    e.Source,
				Type:      e.Type,
			})
		}
	}

	slices.SortStableFunc(infos, func(a, b models.VersionInfo) int {
		return cmp.Compare(b.Timestamp.UnixNano(), a.Timestamp.UnixNano())
	})
	if limit > 0 && len(infos) > limit {
		infos = infos[:limit]
	}
	return infos
}

// RestoreVersion applies a historical version. Ids of the local cache are
// restored from the cache, any other id is fetched from the server.
func (s *clientSyncService) RestoreVersion(ctx context.Context, domain, versionID string) models.SyncResult {
	domain = host.NormalizeDomain(domain)

	unlock := s.locks.lock(domain)
	defer unlock()

	serverCfg := s.config.GetServerConfig()
	domainCfg := s.config.GetDomainConfig(domain)

	var snapshot models.Snapshot
	if entry, ok := s.versions.Find(domain, versionID); ok {
		raw, err := crypto.Open(entry.Payload, serverCfg.ActiveKey(), s.params)
		if err != nil {
			return models.FailedResult(domain, err)
		}
		part := map[string]string{}
		if err = json.Unmarshal(raw, &part); err != nil {
			return models.FailedResult(domain, fmt.Errorf("%w: %w", ErrDecodeFailure, err))
		}
		snapshot = models.NewSnapshot(entry.Timestamp)
		if entry.Type == models.VersionCookie {
			snapshot.Cookies = part
		} else {
			snapshot.KeyValueStore = part
		}
	} else {
		if !serverCfg.Ready() {
			return models.FailedResult(domain, ErrNoServerConfigured)
		}
		remote, err := s.serverAdapter.FetchVersion(ctx, serverCfg.ServerURL, serverCfg.Pass, domain, versionID)
		if errors.Is(err, adapter.ErrNotFound) {
			return models.FailedResult(domain, fmt.Errorf("%w: %s", ErrVersionNotFound, versionID))
		}
		if err != nil {
			return models.FailedResult(domain, mapAdapterError(err))
		}
		if err = s.openRemote(remote, serverCfg, domainCfg); err != nil {
			return models.FailedResult(domain, err)
		}
		snapshot = remote.Snapshot
	}

	if err := s.snapshots.ApplyRemote(ctx, domain, snapshot); err != nil {
		return models.FailedResult(domain, err)
	}

	decision := models.Decision{Action: models.ActionDownload, Reason: "restored version " + versionID}
	if err := s.recordOutcome(ctx, domain, domainCfg, serverCfg, decision.Action, snapshot); err != nil {
		return models.FailedResult(domain, err)
	}
	return models.Succeeded(domain, decision)
}

func (s *clientSyncService) DeleteRemoteData(ctx context.Context, domain, versionID string) (int64, error) {
	cfg := s.config.GetServerConfig()
	if !cfg.Ready() {
		return 0, ErrNoServerConfigured
	}

	deleted, err := s.serverAdapter.DeleteData(ctx, cfg.ServerURL, cfg.Pass, host.NormalizeDomain(domain), versionID)
	if err != nil {
		return 0, mapAdapterError(err)
	}
	return deleted, nil
}

func (s *clientSyncService) QuickAccessURL(_ context.Context, domain string) (string, error) {
	cfg := s.config.GetServerConfig()
	if !cfg.Ready() {
		return "", ErrNoServerConfigured
	}

	link, err := s.serverAdapter.QuickAccessURL(cfg.ServerURL, cfg.Pass, host.NormalizeDomain(domain), cfg.ActiveKey())
	if err != nil {
		return "", mapAdapterError(err)
	}
	return link, nil
}

// CopyQuickAccessURL puts the quick-access link on the system clipboard and
// returns it.
func (s *clientSyncService) CopyQuickAccessURL(ctx context.Context, domain string) (string, error) {
	link, err := s.QuickAccessURL(ctx, domain)
	if err != nil {
		return "", err
	}
	if err = s.copyText(link); err != nil {
		return link, fmt.Errorf("copy to clipboard: %w", err)
	}
	return link, nil
}

// TestServerConnection checks /health and the server version. Servers that
// do not report a version are accepted.
func (s *clientSyncService) TestServerConnection(ctx context.Context) (models.HealthResponse, error) {
	cfg := s.config.GetServerConfig()
	if !cfg.HasServer() {
		return models.HealthResponse{}, ErrNoServerConfigured
	}

	health, err := s.serverAdapter.Health(ctx, cfg.ServerURL)
	if err != nil {
		return models.HealthResponse{}, mapAdapterError(err)
	}

	if health.Version == "" {
		s.logger.Debug().Msg("server did not report its version")
	} else {
		v, err := version.NewVersion(health.Version)
		if err != nil {
			return health, fmt.Errorf("%w: %q", ErrIncompatibleServer, health.Version)
		}
		if !s.supported.Check(v) {
			return health, fmt.Errorf("%w: %s not in %s", ErrIncompatibleServer, v, s.supported)
		}
	}

	if health.Clients != "" {
		clients, err := version.NewConstraint(health.Clients)
		if err != nil {
			return health, fmt.Errorf("%w: unreadable client range %q", ErrIncompatibleServer, health.Clients)
		}
		if !clients.Check(version.Must(version.NewVersion(models.ProtocolVersion))) {
			return health, fmt.Errorf("%w: server accepts clients %s, this one speaks %s", ErrIncompatibleServer, health.Clients, models.ProtocolVersion)
		}
	}
	return health, nil
}

func (s *clientSyncService) Stats(ctx context.Context) (models.PassStatsResponse, error) {
	cfg := s.config.GetServerConfig()
	if !cfg.Ready() {
		return models.PassStatsResponse{}, ErrNoServerConfigured
	}

	stats, err := s.serverAdapter.Stats(ctx, cfg.ServerURL, cfg.Pass)
	if err != nil {
		return models.PassStatsResponse{}, mapAdapterError(err)
	}
	return stats, nil
}
