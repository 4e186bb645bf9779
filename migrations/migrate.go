// Package migrations embeds the goose migrations of the reference server
// (PostgreSQL) and of the client state store (SQLite).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql client/*.sql
var embedMigrations embed.FS

// Migration sets.
const (
	ServerDir = "server"
	ClientDir = "client"
)

// goose keeps its base FS and dialect in package state
var mu sync.Mutex

// MigrateServer applies the PostgreSQL migrations.
func MigrateServer(db *sql.DB) error {
	return migrate(db, "pgx", ServerDir)
}

// MigrateClient applies the SQLite migrations of the state store.
func MigrateClient(db *sql.DB) error {
	return migrate(db, "sqlite3", ClientDir)
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
