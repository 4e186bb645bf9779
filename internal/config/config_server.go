// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the validated view used by the reference server.
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
	Limits  Limits
	Workers Workers
}

func defaultServerConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "go-pass-sync",
			TokenDuration:    time.Hour,
			Version:          "1.0.0",
			SupportedClients: ">= 1.0.0, < 2.0.0",
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:    10,
				MaxIdleConns:    4,
				ConnMaxLifetime: 30 * time.Minute,
			},
		},
		Server: Server{
			HTTPAddress:    ":5000",
			RequestTimeout: 30 * time.Second,
		},
		Limits: Limits{
			MaxDataSize:   1 << 20,
			MaxVersions:   10,
			RatePerSecond: 20,
			RateBurst:     40,
		},
		Workers: Workers{PruneInterval: 10 * time.Minute},
	}
}

// GetServerConfig loads, merges, and validates the server configuration.
// args are the command-line arguments without the program name.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(ParseServerFlags(args)).
		withJSON().
		withDefaults(defaultServerConfig()).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Limits:  cfg.Limits,
		Workers: cfg.Workers,
	}

	return serverCfg, serverCfg.validate()
}
