// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/models"
)

// DefaultVersionsLimit is used when a listing asks for no particular limit.
const DefaultVersionsLimit = 5

type dataService struct {
	dataRepository store.DataRepository
	passRepository store.PassRepository

	maxDataSize int64
	maxVersions int
	params      crypto.ArgonParams

	logger *logger.Logger
}

func NewDataService(dataRepository store.DataRepository, passRepository store.PassRepository, limits config.Limits, logger *logger.Logger) DataService {
	return &dataService{
		dataRepository: dataRepository,
		passRepository: passRepository,
		maxDataSize:    limits.MaxDataSize,
		maxVersions:    limits.MaxVersions,
		params:         crypto.DefaultArgonParams(),
		logger:         logger,
	}
}

// Upload stores a new version and trims the domain to the version limit.
// An unknown pass is reported as store.ErrPassNotFound.
func (d *dataService) Upload(ctx context.Context, entry models.DataEntry) (models.DataEntry, error) {
	log := logger.FromContext(ctx)

	entry.Domain = strings.TrimSpace(entry.Domain)
	entry.Size = int64(len(entry.Data))

	saved, err := d.dataRepository.SaveData(ctx, entry)
	if err != nil {
		log.Err(err).Str("pass", entry.Pass.Masked()).Str("domain", entry.Domain).Msg("saving data failed")
		return models.DataEntry{}, fmt.Errorf("saving data failed: %w", err)
	}

	pruned, err := d.dataRepository.PruneVersions(ctx, entry.Pass, entry.Domain, d.maxVersions)
	if err != nil {
		// the cron job catches up later
		log.Warn().Err(err).Str("domain", entry.Domain).Msg("pruning after upload failed")
	} else if pruned > 0 {
		log.Debug().Int64("pruned", pruned).Str("domain", entry.Domain).Msg("old versions pruned")
	}

	return saved, nil
}

func (d *dataService) Latest(ctx context.Context, pass models.Pass, domain string) (models.DataEntry, error) {
	return d.dataRepository.LatestData(ctx, pass, strings.TrimSpace(domain))
}

// ListVersions returns up to limit entries, newest first. The limit is
// clamped to the server maximum.
func (d *dataService) ListVersions(ctx context.Context, pass models.Pass, domain string, limit int) ([]models.DataEntry, error) {
	if limit <= 0 {
		limit = DefaultVersionsLimit
	}
	limit = min(limit, d.maxVersions)

	return d.dataRepository.ListVersions(ctx, pass, strings.TrimSpace(domain), limit)
}

func (d *dataService) GetVersion(ctx context.Context, pass models.Pass, domain, versionID string) (models.DataEntry, error) {
	id, err := models.ParseDataID(versionID)
	if err != nil {
		return models.DataEntry{}, fmt.Errorf("%w: %w", ErrInvalidVersionID, err)
	}

	return d.dataRepository.GetVersion(ctx, pass, strings.TrimSpace(domain), id)
}

func (d *dataService) Delete(ctx context.Context, pass models.Pass, domain, versionID string) (int64, error) {
	var id int64
	if versionID != "" {
		parsed, err := models.ParseDataID(versionID)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidVersionID, err)
		}
		id = parsed
	}

	deleted, err := d.dataRepository.DeleteData(ctx, pass, strings.TrimSpace(domain), id)
	if err != nil {
		return 0, fmt.Errorf("deleting data failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("pass", pass.Masked()).
		Str("domain", domain).
		Int64("deleted", deleted).
		Msg("data deleted")
	return deleted, nil
}

// PassStats fails with store.ErrPassNotFound for unknown passes.
func (d *dataService) PassStats(ctx context.Context, pass models.Pass) (models.PassStats, error) {
	if _, err := d.passRepository.FindPass(ctx, pass); err != nil {
		return models.PassStats{}, err
	}

	return d.dataRepository.PassStats(ctx, pass)
}

func (d *dataService) ServerStats(ctx context.Context) (models.ServerStats, error) {
	stats, err := d.dataRepository.ServerStats(ctx)
	if err != nil {
		return models.ServerStats{}, err
	}

	stats.MaxDataSize = d.maxDataSize
	stats.MaxVersions = d.maxVersions
	return stats, nil
}

// QuickAccess returns the newest entry of the domain. With a key the payload
// is opened server-side; a failed or non-object decryption leaves Decrypted
// unset and the caller gets the stored payload.
func (d *dataService) QuickAccess(ctx context.Context, pass models.Pass, domain, key string) (models.QuickAccess, error) {
	entry, err := d.dataRepository.LatestData(ctx, pass, strings.TrimSpace(domain))
	if err != nil {
		return models.QuickAccess{}, err
	}

	result := models.QuickAccess{Entry: entry}
	if key == "" {
		return result, nil
	}

	plain, err := crypto.Open(entry.Data, key, d.params)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("domain", entry.Domain).Msg("quick access decryption failed")
		return result, nil
	}
	if !bytes.HasPrefix(bytes.TrimSpace(plain), []byte("{")) {
		return result, nil
	}

	result.Decrypted = true
	result.Data = plain
	return result, nil
}

func (d *dataService) Prune(ctx context.Context) (int64, error) {
	pruned, err := d.dataRepository.PruneAll(ctx, d.maxVersions)
	if err != nil {
		return 0, fmt.Errorf("pruning versions failed: %w", err)
	}
	return pruned, nil
}
