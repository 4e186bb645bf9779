package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Defaults applied to a fresh [ServerConfig].
const (
	DefaultSyncIntervalMinutes = 5
	DefaultMaxVersions         = 5
	DefaultMinServerVersions   = 2
	DefaultMaxValueLength      = 500
)

var (
	ErrInvalidServerURL      = errors.New("server url must be an absolute http(s) url")
	ErrInvalidMaxVersions    = errors.New("max versions must be at least 1")
	ErrInvalidMinServer      = errors.New("min server versions must be between 0 and max versions")
	ErrInvalidSyncInterval   = errors.New("sync interval must be at least 1 minute")
	ErrInvalidMaxValueLength = errors.New("max value length must be positive")
)

// SyncSource tells where the data of the last successful sync came from.
type SyncSource string

const (
	SourceLocal  SyncSource = "local"
	SourceServer SyncSource = "server"
)

// ServerConfig is the process-wide sync configuration of a client.
type ServerConfig struct {
	ServerURL           string `json:"serverUrl"`
	Pass                Pass   `json:"pass"`
	EncryptionKey       string `json:"encryptionKey"`
	EncryptionEnabled   bool   `json:"encryptionEnabled"`
	SyncIntervalMinutes int    `json:"syncIntervalMinutes"`
	MaxVersions         int    `json:"maxVersions"`
	MinServerVersions   int    `json:"minServerVersions"`
}

// DefaultServerConfig returns a config with no server and default limits.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		SyncIntervalMinutes: DefaultSyncIntervalMinutes,
		MaxVersions:         DefaultMaxVersions,
		MinServerVersions:   DefaultMinServerVersions,
	}
}

// HasServer reports whether a server url is configured.
func (c ServerConfig) HasServer() bool {
	return strings.TrimSpace(c.ServerURL) != ""
}

// Ready reports whether both a server url and a pass are configured.
func (c ServerConfig) Ready() bool {
	return c.HasServer() && !c.Pass.IsZero()
}

// ActiveKey returns the key payloads are encrypted with, or "" when
// encryption is off.
func (c ServerConfig) ActiveKey() string {
	if !c.EncryptionEnabled {
		return ""
	}
	return c.EncryptionKey
}

// SyncInterval returns the auto sync period.
func (c ServerConfig) SyncInterval() time.Duration {
	if c.SyncIntervalMinutes <= 0 {
		return DefaultSyncIntervalMinutes * time.Minute
	}
	return time.Duration(c.SyncIntervalMinutes) * time.Minute
}

// Validate checks field ranges.
func (c ServerConfig) Validate() error {
	if c.HasServer() {
		u, err := url.Parse(strings.TrimSpace(c.ServerURL))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %q", ErrInvalidServerURL, c.ServerURL)
		}
	}
	if c.MaxVersions < 1 {
		return ErrInvalidMaxVersions
	}
	if c.MinServerVersions < 0 || c.MinServerVersions > c.MaxVersions {
		return ErrInvalidMinServer
	}
	if c.SyncIntervalMinutes < 1 {
		return ErrInvalidSyncInterval
	}
	return nil
}

// ServerConfigPatch is a partial update of [ServerConfig]. Nil fields are
// left untouched.
type ServerConfigPatch struct {
	ServerURL           *string `json:"serverUrl,omitempty"`
	Pass                *Pass   `json:"pass,omitempty"`
	EncryptionKey       *string `json:"encryptionKey,omitempty"`
	EncryptionEnabled   *bool   `json:"encryptionEnabled,omitempty"`
	SyncIntervalMinutes *int    `json:"syncIntervalMinutes,omitempty"`
	MaxVersions         *int    `json:"maxVersions,omitempty"`
	MinServerVersions   *int    `json:"minServerVersions,omitempty"`
}

// ParseServerConfigPatch decodes a JSON patch and fails on keys that are not
// fields of [ServerConfig].
func ParseServerConfigPatch(data []byte) (ServerConfigPatch, error) {
	var patch ServerConfigPatch

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		return ServerConfigPatch{}, fmt.Errorf("decode server config patch: %w", err)
	}

	return patch, nil
}

// IsEmpty reports whether the patch changes nothing.
func (p ServerConfigPatch) IsEmpty() bool {
	return p == ServerConfigPatch{}
}

// Apply returns cfg with every non-nil field of the patch written over it.
func (p ServerConfigPatch) Apply(cfg ServerConfig) ServerConfig {
	if p.ServerURL != nil {
		cfg.ServerURL = strings.TrimRight(strings.TrimSpace(*p.ServerURL), "/")
	}
	if p.Pass != nil {
		cfg.Pass = *p.Pass
	}
	if p.EncryptionKey != nil {
		cfg.EncryptionKey = *p.EncryptionKey
	}
	if p.EncryptionEnabled != nil {
		cfg.EncryptionEnabled = *p.EncryptionEnabled
	}
	if p.SyncIntervalMinutes != nil {
		cfg.SyncIntervalMinutes = *p.SyncIntervalMinutes
	}
	if p.MaxVersions != nil {
		cfg.MaxVersions = *p.MaxVersions
	}
	if p.MinServerVersions != nil {
		cfg.MinServerVersions = *p.MinServerVersions
	}
	return cfg
}

// DomainConfig holds the per-domain sync switches and the outcome of the
// last successful sync.
type DomainConfig struct {
	CookieSyncEnabled  bool       `json:"cookieSyncEnabled"`
	StorageSyncEnabled bool       `json:"storageSyncEnabled"`
	LastSyncTime       *time.Time `json:"lastSyncTime,omitempty"`
	LastSyncSource     SyncSource `json:"lastSyncSource,omitempty"`
}

// Enabled reports whether any category is synced for the domain.
func (d DomainConfig) Enabled() bool {
	return d.CookieSyncEnabled || d.StorageSyncEnabled
}

// EnabledTypes lists the version types matching the enabled categories.
func (d DomainConfig) EnabledTypes() []VersionType {
	types := make([]VersionType, 0, 2)
	if d.CookieSyncEnabled {
		types = append(types, VersionCookie)
	}
	if d.StorageSyncEnabled {
		types = append(types, VersionKeyValueStore)
	}
	return types
}
