package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// MemoryDSN selects the in-memory state store.
const MemoryDSN = "memory"

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage contains the engine state store settings.
type ClientStorage struct {
	// DSN is the SQLite file path or [MemoryDSN].
	DSN string
}

// ClientHost points at the host profile.
type ClientHost struct {
	ProfilePath string
}

// ClientLog configures the rotating log file.
type ClientLog struct {
	File  string
	Debug bool
}

// ClientCrypto selects the payload codec.
type ClientCrypto struct {
	Scheme         string
	ArgonTime      uint32
	ArgonMemoryKiB uint32
	ArgonThreads   uint8
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Host    ClientHost
	Log     ClientLog
	Crypto  ClientCrypto
}

// defaultClientDir is ~/.go-pass-sync, or a relative directory when the
// home directory cannot be resolved.
func defaultClientDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".go-pass-sync"
	}
	return filepath.Join(home, ".go-pass-sync")
}

func defaultClientConfig() *StructuredConfig {
	dir := defaultClientDir()
	return &StructuredConfig{
		Client: Client{
			StateDSN:    filepath.Join(dir, "state.db"),
			ProfilePath: filepath.Join(dir, "profile.json"),
			LogFile:     filepath.Join(dir, "client.log"),
		},
		Adapter: Adapter{RequestTimeout: 15 * time.Second},
		Crypto: Crypto{
			Scheme:         "aead",
			ArgonMemoryKiB: 64 * 1024,
			ArgonTime:      1,
			ArgonThreads:   4,
		},
	}
}

// GetClientConfig builds and validates the client config view. flags may be
// nil when the caller has no command line.
func GetClientConfig(flags *ClientFlags) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(flags.structured(), nil).
		withJSON().
		withDefaults(defaultClientConfig()).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{RequestTimeout: cfg.Adapter.RequestTimeout},
		Storage: ClientStorage{DSN: cfg.Client.StateDSN},
		Host:    ClientHost{ProfilePath: cfg.Client.ProfilePath},
		Log:     ClientLog{File: cfg.Client.LogFile, Debug: cfg.Client.Debug},
		Crypto: ClientCrypto{
			Scheme:         cfg.Crypto.Scheme,
			ArgonTime:      cfg.Crypto.ArgonTime,
			ArgonMemoryKiB: cfg.Crypto.ArgonMemoryKiB,
			ArgonThreads:   cfg.Crypto.ArgonThreads,
		},
	}

	return clientCfg, clientCfg.validate()
}
