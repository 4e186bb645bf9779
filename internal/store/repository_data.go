package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/jackc/pgerrcode"
)

// dataRepository is the PostgreSQL-backed implementation of [DataRepository]
// over the sync_data table.
type dataRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewDataRepository constructs a [DataRepository] over db.
func NewDataRepository(db *DB, logger *logger.Logger) DataRepository {
	return &dataRepository{db: db, logger: logger}
}

// SaveData inserts a new version. A foreign key violation means the pass
// does not exist and is reported as [ErrPassNotFound].
func (d *dataRepository) SaveData(ctx context.Context, entry models.DataEntry) (models.DataEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveDataQuery(entry)
	if err != nil {
		return models.DataEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = d.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt)
	switch {
	case err == nil:
		entry.CreatedAt = entry.CreatedAt.UTC()
		return entry, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.DataEntry{}, ErrDataNotSaved
	case postgresError(err) == pgerrcode.ForeignKeyViolation:
		return models.DataEntry{}, ErrPassNotFound
	default:
		log.Err(err).
			Str("func", "*dataRepository.SaveData").
			Str("domain", entry.Domain).
			Msg("unexpected DB error")
		return models.DataEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}
}

// LatestData returns the newest entry or [ErrDataNotFound].
func (d *dataRepository) LatestData(ctx context.Context, pass models.Pass, domain string) (models.DataEntry, error) {
	query, args, err := buildLatestDataQuery(pass, domain)
	if err != nil {
		return models.DataEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return d.getOne(ctx, "*dataRepository.LatestData", pass, domain, query, args)
}

// GetVersion returns one entry of the domain or [ErrDataNotFound].
func (d *dataRepository) GetVersion(ctx context.Context, pass models.Pass, domain string, id int64) (models.DataEntry, error) {
	query, args, err := buildGetVersionQuery(pass, domain, id)
	if err != nil {
		return models.DataEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return d.getOne(ctx, "*dataRepository.GetVersion", pass, domain, query, args)
}

func (d *dataRepository) getOne(ctx context.Context, fn string, pass models.Pass, domain, query string, args []any) (models.DataEntry, error) {
	entry := models.DataEntry{Pass: pass, Domain: domain}
	err := d.db.withRetry(ctx, func() error {
		return d.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.Data, &entry.Size, &entry.CreatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.DataEntry{}, ErrDataNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Str("domain", domain).Msg("unexpected DB error")
		return models.DataEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	entry.CreatedAt = entry.CreatedAt.UTC()
	return entry, nil
}

func (d *dataRepository) ListVersions(ctx context.Context, pass models.Pass, domain string, limit int) ([]models.DataEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListVersionsQuery(pass, domain, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*dataRepository.ListVersions").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	versions := make([]models.DataEntry, 0, max(limit, 0))
	for rows.Next() {
		entry := models.DataEntry{Pass: pass, Domain: domain}
		if err = rows.Scan(&entry.ID, &entry.Size, &entry.CreatedAt); err != nil {
			log.Err(err).Str("func", "*dataRepository.ListVersions").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entry.CreatedAt = entry.CreatedAt.UTC()
		versions = append(versions, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return versions, nil
}

func (d *dataRepository) DeleteData(ctx context.Context, pass models.Pass, domain string, id int64) (int64, error) {
	query, args, err := buildDeleteDataQuery(pass, domain, id)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return d.exec(ctx, "*dataRepository.DeleteData", query, args)
}

func (d *dataRepository) PruneVersions(ctx context.Context, pass models.Pass, domain string, keep int) (int64, error) {
	query, args, err := buildPruneVersionsQuery(pass, domain, keep)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return d.exec(ctx, "*dataRepository.PruneVersions", query, args)
}

func (d *dataRepository) PruneAll(ctx context.Context, keep int) (int64, error) {
	query, args, err := buildPruneAllQuery(keep)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return d.exec(ctx, "*dataRepository.PruneAll", query, args)
}

func (d *dataRepository) exec(ctx context.Context, fn, query string, args []any) (int64, error) {
	var affected int64
	err := d.db.withRetry(ctx, func() error {
		res, err := d.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected, nil
}

func (d *dataRepository) ListDomains(ctx context.Context, pass models.Pass) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDomainsQuery(pass)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*dataRepository.ListDomains").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	domains := make([]string, 0, 8)
	for rows.Next() {
		var domain string
		if err = rows.Scan(&domain); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		domains = append(domains, domain)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return domains, nil
}

// PassStats aggregates per domain; totals and the last activity are derived
// from the domain rows.
func (d *dataRepository) PassStats(ctx context.Context, pass models.Pass) (models.PassStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPassStatsQuery(pass)
	if err != nil {
		return models.PassStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*dataRepository.PassStats").Msg("failed to execute query")
		return models.PassStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stats := models.PassStats{Pass: pass, Domains: make([]models.DomainUsage, 0, 8)}
	var last time.Time
	for rows.Next() {
		var usage models.DomainUsage
		if err = rows.Scan(&usage.Domain, &usage.VersionCount, &usage.Size, &usage.LastModified); err != nil {
			log.Err(err).Str("func", "*dataRepository.PassStats").Msg("failed to scan row")
			return models.PassStats{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		usage.LastModified = usage.LastModified.UTC()

		stats.TotalSize += usage.Size
		if usage.LastModified.After(last) {
			last = usage.LastModified
		}
		stats.Domains = append(stats.Domains, usage)
	}
	if err = rows.Err(); err != nil {
		return models.PassStats{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if !last.IsZero() {
		stats.LastActivity = &last
	}
	return stats, nil
}

func (d *dataRepository) ServerStats(ctx context.Context) (models.ServerStats, error) {
	query, args, err := buildServerStatsQuery()
	if err != nil {
		return models.ServerStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stats models.ServerStats
	err = d.db.withRetry(ctx, func() error {
		return d.db.QueryRowContext(ctx, query, args...).Scan(&stats.TotalPasses, &stats.TotalDomains, &stats.TotalSize)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dataRepository.ServerStats").Msg("unexpected DB error")
		return models.ServerStats{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	return stats, nil
}
