package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/host"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/models"
)

type clientConfigService struct {
	store store.StateStore

	mu             sync.RWMutex
	server         models.ServerConfig
	domains        map[string]models.DomainConfig
	maxValueLength int

	logger *logger.Logger
}

// NewClientConfigService creates a ClientConfigService over the state store. Until
// Load is called it serves defaults.
func NewClientConfigService(stateStore store.StateStore, logger *logger.Logger) ClientConfigService {
	return &clientConfigService{
		store:          stateStore,
		server:         models.DefaultServerConfig(),
		domains:        map[string]models.DomainConfig{},
		maxValueLength: models.DefaultMaxValueLength,
		logger:         logger,
	}
}

// Load reads the persisted state. Missing keys keep their defaults; a stored
// server config that no longer validates is replaced by the defaults with its
// url and credentials kept.
func (c *clientConfigService) Load(ctx context.Context) error {
	server := models.DefaultServerConfig()
	if _, err := store.GetJSON(ctx, c.store, store.KeySyncConfig, &server); err != nil {
		return fmt.Errorf("load sync config: %w", err)
	}
	if err := server.Validate(); err != nil {
		c.logger.Warn().Err(err).Str("func", "*clientConfigService.Load").Msg("stored sync config is invalid, limits reset")
		server = resetLimits(server)
	}

	domains, err := c.loadDomains(ctx)
	if err != nil {
		return err
	}

	maxValueLength := models.DefaultMaxValueLength
	if _, err := store.GetJSON(ctx, c.store, store.KeyMaxValueLength, &maxValueLength); err != nil {
		return fmt.Errorf("load max value length: %w", err)
	}
	if maxValueLength <= 0 {
		maxValueLength = models.DefaultMaxValueLength
	}

	c.mu.Lock()
	c.server = server
	c.domains = domains
	c.maxValueLength = maxValueLength
	c.mu.Unlock()

	return nil
}

func resetLimits(cfg models.ServerConfig) models.ServerConfig {
	defaults := models.DefaultServerConfig()
	defaults.ServerURL = cfg.ServerURL
	defaults.Pass = cfg.Pass
	defaults.EncryptionKey = cfg.EncryptionKey
	defaults.EncryptionEnabled = cfg.EncryptionEnabled
	if defaults.Validate() != nil {
		defaults.ServerURL = ""
	}
	return defaults
}

func (c *clientConfigService) GetServerConfig() models.ServerConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.server
}

// UpdateServerConfig applies patch to the persisted config, validates the
// result and persists it. On any error the previous config stays in effect.
func (c *clientConfigService) UpdateServerConfig(ctx context.Context, patch models.ServerConfigPatch) (models.ServerConfig, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.server
	if _, err := store.GetJSON(ctx, c.store, store.KeySyncConfig, &current); err != nil {
		return c.server, fmt.Errorf("load sync config: %w", err)
	}
	if current.Validate() != nil {
		current = resetLimits(current)
	}

	next := patch.Apply(current)
	if err := next.Validate(); err != nil {
		return c.server, err
	}

	if err := store.SetJSON(ctx, c.store, store.KeySyncConfig, next); err != nil {
		c.logger.Err(err).Str("func", "*clientConfigService.UpdateServerConfig").Msg("failed to persist sync config")
		return c.server, fmt.Errorf("persist sync config: %w", err)
	}

	c.server = next
	return next, nil
}

func (c *clientConfigService) GetDomainConfig(domain string) models.DomainConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cfg, ok := c.domains[host.NormalizeDomain(domain)]
	if !ok {
		return models.DomainConfig{}
	}
	if cfg.LastSyncTime != nil {
		at := *cfg.LastSyncTime
		cfg.LastSyncTime = &at
	}
	return cfg
}

// UpdateDomainConfig stores cfg for domain. The persisted map is re-read
// first so entries written by other processes sharing the store survive.
func (c *clientConfigService) UpdateDomainConfig(ctx context.Context, domain string, cfg models.DomainConfig) error {
	return c.modifyDomain(ctx, domain, "*clientConfigService.UpdateDomainConfig", func(models.DomainConfig) models.DomainConfig {
		return cfg
	})
}

// MarkSynced stamps the last sync of domain and keeps its switches as
// currently persisted.
func (c *clientConfigService) MarkSynced(ctx context.Context, domain string, at time.Time, source models.SyncSource) error {
	return c.modifyDomain(ctx, domain, "*clientConfigService.MarkSynced", func(cfg models.DomainConfig) models.DomainConfig {
		cfg.LastSyncTime = &at
		cfg.LastSyncSource = source
		return cfg
	})
}

func (c *clientConfigService) modifyDomain(ctx context.Context, domain, fn string, edit func(models.DomainConfig) models.DomainConfig) error {
	domain = host.NormalizeDomain(domain)
	if domain == "" {
		return fmt.Errorf("update domain config: empty domain")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.loadDomains(ctx)
	if err != nil {
		return err
	}
	next[domain] = edit(next[domain])

	if err = store.SetJSON(ctx, c.store, store.KeyDomainConfigs, next); err != nil {
		c.logger.Err(err).Str("func", fn).Str("domain", domain).Msg("failed to persist domain configs")
		return fmt.Errorf("persist domain configs: %w", err)
	}

	c.domains = next
	return nil
}

// loadDomains reads the persisted domain map with normalized keys.
func (c *clientConfigService) loadDomains(ctx context.Context) (map[string]models.DomainConfig, error) {
	domains := map[string]models.DomainConfig{}
	if _, err := store.GetJSON(ctx, c.store, store.KeyDomainConfigs, &domains); err != nil {
		return nil, fmt.Errorf("load domain configs: %w", err)
	}

	normalized := make(map[string]models.DomainConfig, len(domains))
	for domain, cfg := range domains {
		normalized[host.NormalizeDomain(domain)] = cfg
	}
	return normalized, nil
}

func (c *clientConfigService) ListDomains() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.domains))
}

func (c *clientConfigService) MaxValueLength() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxValueLength
}

func (c *clientConfigService) SetMaxValueLength(ctx context.Context, n int) error {
	if n <= 0 {
		return models.ErrInvalidMaxValueLength
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := store.SetJSON(ctx, c.store, store.KeyMaxValueLength, n); err != nil {
		return fmt.Errorf("persist max value length: %w", err)
	}
	c.maxValueLength = n
	return nil
}
