package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/internal/utils"
	"github.com/MKhiriev/go-pass-sync/models"
)

// passGenerationAttempts bounds the retries on a pass collision.
const passGenerationAttempts = 3

type passService struct {
	passRepository store.PassRepository
	dataRepository store.DataRepository

	generate func(n int) (string, error)

	logger *logger.Logger
}

func NewPassService(passRepository store.PassRepository, dataRepository store.DataRepository, logger *logger.Logger) PassService {
	return &passService{
		passRepository: passRepository,
		dataRepository: dataRepository,
		generate:       utils.GeneratePass,
		logger:         logger,
	}
}

// CreatePass stores a fresh random pass, retrying when it collides with an
// existing one.
func (p *passService) CreatePass(ctx context.Context) (models.StoredPass, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= passGenerationAttempts; attempt++ {
		raw, err := p.generate(utils.DefaultPassLength)
		if err != nil {
			return models.StoredPass{}, fmt.Errorf("%w: %w", ErrPassGenerationFailed, err)
		}

		stored, err := p.passRepository.CreatePass(ctx, models.Pass(raw))
		if errors.Is(err, store.ErrPassAlreadyExists) {
			log.Warn().Int("attempt", attempt).Msg("generated pass collides with an existing one")
			continue
		}
		if err != nil {
			log.Err(err).Msg("pass creation ended with error")
			return models.StoredPass{}, fmt.Errorf("pass creation ended with error: %w", err)
		}

		log.Info().Str("pass", stored.Pass.Masked()).Msg("pass created")
		return stored, nil
	}

	return models.StoredPass{}, fmt.Errorf("%w: %d collisions in a row", ErrPassGenerationFailed, passGenerationAttempts)
}

func (p *passService) CheckPass(ctx context.Context, pass models.Pass) (models.PassInfo, error) {
	stored, err := p.passRepository.FindPass(ctx, pass)
	if errors.Is(err, store.ErrPassNotFound) {
		return models.PassInfo{Exists: false}, nil
	}
	if err != nil {
		return models.PassInfo{}, fmt.Errorf("pass lookup failed: %w", err)
	}

	domains, err := p.dataRepository.ListDomains(ctx, pass)
	if err != nil {
		return models.PassInfo{}, fmt.Errorf("domain listing failed: %w", err)
	}

	return models.PassInfo{Exists: true, Pass: stored, Domains: domains}, nil
}
