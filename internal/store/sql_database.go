package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/migrations"
)

// retry policy for transient database failures
const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// MigrateServer applies the PostgreSQL schema.
func (db *DB) MigrateServer() error {
	return migrations.MigrateServer(db.DB)
}

// MigrateClient applies the SQLite state schema.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// withRetry runs op again while the classifier reports the failure as
// [Retryable], waiting a little longer before each new attempt.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return err
}
