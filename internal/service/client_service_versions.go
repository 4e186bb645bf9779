package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-pass-sync/internal/host"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/models"
)

type clientVersionService struct {
	store  store.StateStore
	config ClientConfigService

	mu    sync.RWMutex
	cache map[string][]models.VersionEntry

	logger *logger.Logger
}

func NewClientVersionService(stateStore store.StateStore, config ClientConfigService, logger *logger.Logger) ClientVersionService {
	return &clientVersionService{
		store:  stateStore,
		config: config,
		cache:  map[string][]models.VersionEntry{},
		logger: logger,
	}
}

func (v *clientVersionService) Load(ctx context.Context) error {
	cache := map[string][]models.VersionEntry{}
	if _, err := store.GetJSON(ctx, v.store, store.KeyVersionCache, &cache); err != nil {
		return fmt.Errorf("load version cache: %w", err)
	}

	v.mu.Lock()
	v.cache = cache
	v.mu.Unlock()
	return nil
}

// AddVersion prepends entry to the list of (domain, t), applies retention and
// persists the cache. The persisted cache is re-read first so lists written by
// other processes sharing the store are kept. A failed write leaves the
// in-memory cache as it was.
func (v *clientVersionService) AddVersion(ctx context.Context, domain string, t models.VersionType, entry models.VersionEntry) error {
	cfg := v.config.GetServerConfig()
	key := models.VersionCacheKey(host.NormalizeDomain(domain), t)

	v.mu.Lock()
	defer v.mu.Unlock()

	next := map[string][]models.VersionEntry{}
	if _, err := store.GetJSON(ctx, v.store, store.KeyVersionCache, &next); err != nil {
		return fmt.Errorf("load version cache: %w", err)
	}

	prev := next[key]
	list := make([]models.VersionEntry, 0, len(prev)+1)
	list = append(list, entry)
	list = append(list, prev...)
	next[key] = RetainVersions(list, cfg.MaxVersions, cfg.MinServerVersions)

	if err := store.SetJSON(ctx, v.store, store.KeyVersionCache, next); err != nil {
		v.logger.Err(err).Str("func", "*clientVersionService.AddVersion").Str("key", key).Msg("failed to persist version cache")
		return fmt.Errorf("persist version cache: %w", err)
	}

	v.cache = next
	return nil
}

func (v *clientVersionService) ListVersions(domain string, t models.VersionType, limit int) []models.VersionEntry {
	v.mu.RLock()
	defer v.mu.RUnlock()

	list := v.cache[models.VersionCacheKey(host.NormalizeDomain(domain), t)]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return slices.Clone(list)
}

func (v *clientVersionService) Find(domain, id string) (models.VersionEntry, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	domain = host.NormalizeDomain(domain)
	for _, t := range []models.VersionType{models.VersionCookie, models.VersionKeyValueStore} {
		for _, e := range v.cache[models.VersionCacheKey(domain, t)] {
			if e.ID == id {
				return e, true
			}
		}
	}
	return models.VersionEntry{}, false
}

func (v *clientVersionService) Snapshot() map[string][]models.VersionEntry {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make(map[string][]models.VersionEntry, len(v.cache))
	for k, list := range v.cache {
		out[k] = slices.Clone(list)
	}
	return out
}

// RetainVersions trims entries to at most maxVersions. When trimming is
// needed it keeps the newest minServerVersions server entries and fills the
// rest with the newest local entries, then with further server entries if
// local ones run out. The result is ordered newest first.
func RetainVersions(entries []models.VersionEntry, maxVersions, minServerVersions int) []models.VersionEntry {
	if maxVersions < 1 {
		maxVersions = 1
	}
	minServerVersions = min(max(minServerVersions, 0), maxVersions)

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b models.VersionEntry) int {
		return cmp.Compare(b.Timestamp.UnixNano(), a.Timestamp.UnixNano())
	})
	if len(sorted) <= maxVersions {
		return sorted
	}

	var server, local []models.VersionEntry
	for _, e := range sorted {
		if e.Source == models.SourceServer {
			server = append(server, e)
		} else {
			local = append(local, e)
		}
	}

	keepServer := min(minServerVersions, len(server))
	keepLocal := min(maxVersions-keepServer, len(local))
	extraServer := min(maxVersions-keepServer-keepLocal, len(server)-keepServer)

	kept := make([]models.VersionEntry, 0, maxVersions)
	kept = append(kept, server[:keepServer+extraServer]...)
	kept = append(kept, local[:keepLocal]...)

	slices.SortStableFunc(kept, func(a, b models.VersionEntry) int {
		return cmp.Compare(b.Timestamp.UnixNano(), a.Timestamp.UnixNano())
	})
	return kept
}
