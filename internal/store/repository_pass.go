// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/jackc/pgerrcode"
)

// passRepository is the PostgreSQL-backed implementation of [PassRepository].
type passRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPassRepository constructs a [PassRepository] over db.
func NewPassRepository(db *DB, logger *logger.Logger) PassRepository {
	return &passRepository{db: db, logger: logger}
}

// CreatePass inserts pass. A unique violation is reported as
// [ErrPassAlreadyExists] so the caller can mint another one.
func (p *passRepository) CreatePass(ctx context.Context, pass models.Pass) (models.StoredPass, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreatePassQuery(pass)
	if err != nil {
		return models.StoredPass{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	stored := models.StoredPass{Pass: pass}
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Err(err).Str("func", "*passRepository.CreatePass").Msg("pass collision")
			return models.StoredPass{}, ErrPassAlreadyExists
		}
		log.Err(err).Str("func", "*passRepository.CreatePass").Msg("unexpected DB error")
		return models.StoredPass{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return stored, nil
}

// FindPass returns the stored record or [ErrPassNotFound].
func (p *passRepository) FindPass(ctx context.Context, pass models.Pass) (models.StoredPass, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPassQuery(pass)
	if err != nil {
		return models.StoredPass{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stored models.StoredPass
	err = p.db.withRetry(ctx, func() error {
		return p.db.QueryRowContext(ctx, query, args...).Scan(&stored.ID, &stored.Pass, &stored.CreatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredPass{}, ErrPassNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*passRepository.FindPass").Msg("unexpected DB error")
		return models.StoredPass{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return stored, nil
}

func (p *passRepository) ListPassSummaries(ctx context.Context) ([]models.PassSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPassSummariesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*passRepository.ListPassSummaries").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	summaries := make([]models.PassSummary, 0, 16)
	for rows.Next() {
		var (
			s            models.PassSummary
			lastActivity sql.NullTime
		)
		if err = rows.Scan(&s.Pass, &s.CreatedAt, &s.DomainCount, &s.EntryCount, &s.TotalSize, &lastActivity); err != nil {
			log.Err(err).Str("func", "*passRepository.ListPassSummaries").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if lastActivity.Valid {
			at := lastActivity.Time.UTC()
			s.LastActivity = &at
		}
		summaries = append(summaries, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return summaries, nil
}

func (p *passRepository) DeletePass(ctx context.Context, pass models.Pass) (int64, error) {
	log := logger.FromContext(ctx)

	entriesQuery, entriesArgs, err := buildDeletePassEntriesQuery(pass)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	passQuery, passArgs, err := buildDeletePassQuery(pass)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*passRepository.DeletePass").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, entriesQuery, entriesArgs...)
	if err != nil {
		log.Err(err).Str("func", "*passRepository.DeletePass").Msg("failed to delete entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	entries, _ := res.RowsAffected()

	res, err = tx.ExecContext(ctx, passQuery, passArgs...)
	if err != nil {
		log.Err(err).Str("func", "*passRepository.DeletePass").Msg("failed to delete pass")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, ErrPassNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*passRepository.DeletePass").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return entries, nil
}
