package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
)

// busyTimeoutMillis is how long a connection waits on a lock held by another
// process before the driver gives up with SQLITE_BUSY.
const busyTimeoutMillis = 5000

// NewConnectSQLite opens the engine state file, creating it and its
// directory on first use. The file is shared between the sync daemon and
// CLI invocations, so it runs in WAL mode with a busy timeout and transient
// lock errors are retried.
func NewConnectSQLite(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*DB, error) {
	if err := ensureStateFile(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("path", cfg.DSN).Msg("error creating state file")
		return nil, fmt.Errorf("error creating state file: %w", err)
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening state database")
		return nil, fmt.Errorf("error opening state database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}
	if err = db.withRetry(ctx, func() error { return conn.PingContext(ctx) }); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("state database is not reachable")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", cfg.DSN).Msg("state database opened")

	return db, nil
}

// sqliteDSN turns a plain file path into a go-sqlite3 URI carrying the
// connection pragmas.
func sqliteDSN(path string) string {
	params := url.Values{}
	params.Set("_busy_timeout", fmt.Sprint(busyTimeoutMillis))
	params.Set("_journal_mode", "WAL")
	return "file:" + path + "?" + params.Encode()
}

func ensureStateFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("error creating state directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return err
	}
	return f.Close()
}
