package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
)

// sqliteStateStore keeps the engine state in the engine_state table.
type sqliteStateStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteStateStore constructs a [StateStore] over an already migrated
// SQLite connection.
func NewSQLiteStateStore(db *DB, logger *logger.Logger) StateStore {
	return &sqliteStateStore{db: db, logger: logger}
}

func (s *sqliteStateStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := buildGetStateQuery(key)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteStateStore.Get").Str("key", key).Msg("failed to read state")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return []byte(value), true, nil
}

func (s *sqliteStateStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := buildSetStateQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = s.exec(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteStateStore.Set").Str("key", key).Msg("failed to write state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteStateStore) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteStateQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = s.exec(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteStateStore.Delete").Str("key", key).Msg("failed to delete state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteStateStore) exec(ctx context.Context, query string, args ...any) error {
	return s.db.withRetry(ctx, func() error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
}

func (s *sqliteStateStore) Close() error {
	return s.db.Close()
}
