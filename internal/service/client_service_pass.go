package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
)

type clientPassService struct {
	config        ClientConfigService
	serverAdapter adapter.ServerAdapter

	// mu serializes EnsurePass so concurrent callers never mint twice.
	mu sync.Mutex

	logger *logger.Logger
}

func NewClientPassService(config ClientConfigService, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientPassService {
	return &clientPassService{
		config:        config,
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

// CreatePass mints a pass on the configured server and stores it in the
// server config.
func (p *clientPassService) CreatePass(ctx context.Context) (models.Pass, error) {
	cfg := p.config.GetServerConfig()
	if !cfg.HasServer() {
		return "", ErrNoServerConfigured
	}

	pass, err := p.serverAdapter.CreatePass(ctx, cfg.ServerURL)
	if err != nil {
		p.logger.Err(err).Str("func", "*clientPassService.CreatePass").Msg("server refused to create pass")
		return "", mapAdapterError(err)
	}

	if _, err = p.config.UpdateServerConfig(ctx, models.ServerConfigPatch{Pass: &pass}); err != nil {
		return "", err
	}

	p.logger.Info().Str("pass", pass.Masked()).Msg("new pass created")
	return pass, nil
}

// ValidatePass reports whether the server knows pass. A not-found answer is a
// definite false; transport failures and other rejections are errors.
func (p *clientPassService) ValidatePass(ctx context.Context, pass models.Pass) (bool, error) {
	cfg := p.config.GetServerConfig()
	if !cfg.HasServer() {
		return false, ErrNoServerConfigured
	}
	if pass.IsZero() {
		return false, nil
	}

	check, err := p.serverAdapter.CheckPass(ctx, cfg.ServerURL, pass)
	if errors.Is(err, adapter.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, mapAdapterError(err)
	}

	return check.Exists, nil
}

func (p *clientPassService) EnsurePass(ctx context.Context) (models.Pass, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cfg := p.config.GetServerConfig()
	if !cfg.HasServer() {
		return "", ErrNoServerConfigured
	}

	if cfg.Pass.IsZero() {
		return p.CreatePass(ctx)
	}

	valid, err := p.ValidatePass(ctx, cfg.Pass)
	if err != nil {
		return "", err
	}
	if !valid {
		p.logger.Warn().Str("pass", cfg.Pass.Masked()).Msg("server does not know the pass, rotating")
		return p.CreatePass(ctx)
	}

	return cfg.Pass, nil
}
