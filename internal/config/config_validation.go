// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ServerConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if db := cfg.Storage.DB; db.MaxOpenConns < 0 || db.MaxIdleConns < 0 || db.ConnMaxLifetime < 0 {
		return fmt.Errorf("%w: pool settings must not be negative", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.AdminPassword == "" || cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: admin password and token sign key are required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Limits.MaxDataSize <= 0 || cfg.Limits.MaxVersions <= 0 ||
		cfg.Limits.RatePerSecond <= 0 || cfg.Limits.RateBurst <= 0 {
		return ErrInvalidLimitsConfigs
	}

	if cfg.Workers.PruneInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Crypto.Scheme {
	case "aead", "legacy":
	default:
		return fmt.Errorf("%w: unknown scheme %q", ErrInvalidCryptoConfigs, cfg.Crypto.Scheme)
	}

	return nil
}

// IsMemory reports whether the state store should live in memory.
func (s ClientStorage) IsMemory() bool {
	return strings.EqualFold(strings.TrimSpace(s.DSN), MemoryDSN)
}
