package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewConnectPostgres opens the pgx pool sized by cfg and waits for the server
// to answer a ping. A server that is still starting up (57P03) or a dropped
// connection gets the usual retry budget.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("invalid database DSN")
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	configurePool(conn, cfg)

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
	if err = db.withRetry(ctx, func() error { return conn.PingContext(ctx) }); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("database is not reachable")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().
		Str("func", "NewConnectPostgres").
		Int("max_open_conns", cfg.MaxOpenConns).
		Msg("connected to database")

	return db, nil
}

// configurePool applies the pool limits; zero values keep database/sql
// defaults.
func configurePool(conn *sql.DB, cfg config.DB) {
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

// postgresError returns the SQLSTATE of err, or "" when err did not come from
// the server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
