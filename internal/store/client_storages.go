package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
)

// NewStateStore opens the engine state store selected by cfg: an in-memory
// store for [config.MemoryDSN], otherwise an SQLite file that is created and
// migrated on first use.
func NewStateStore(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (StateStore, error) {
	if cfg.IsMemory() {
		logger.Debug().Msg("using in-memory state store")
		return NewMemoryStateStore(), nil
	}

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateClient(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLiteStateStore(db, logger), nil
}
