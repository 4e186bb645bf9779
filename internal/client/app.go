package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-sync/internal/host"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/service"
	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/models"
)

// App owns the initialized engine and the collaborators it was built from.
type App struct {
	engine *service.Engine
	host   *host.ProfileHost
	state  store.StateStore

	logger *logger.Logger
}

// NewApp opens the state store and the host profile, builds the engine and
// initializes it.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	state, err := store.NewStateStore(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create state store: %w", err)
	}

	profileHost, err := host.NewProfileHost(cfg.Host.ProfilePath, logger)
	if err != nil {
		state.Close()
		return nil, fmt.Errorf("open host profile: %w", err)
	}

	params := crypto.ArgonParams{
		Time:    cfg.Crypto.ArgonTime,
		Memory:  cfg.Crypto.ArgonMemoryKiB,
		Threads: cfg.Crypto.ArgonThreads,
	}
	codec, err := crypto.NewCodec(cfg.Crypto.Scheme, params)
	if err != nil {
		state.Close()
		return nil, err
	}

	services := service.NewClientServices(
		state,
		adapter.NewHTTPServerAdapter(cfg.Adapter, logger),
		profileHost,
		codec,
		params,
		logger,
	)

	engine := service.NewEngine(services, logger)
	if err = engine.Init(ctx); err != nil {
		state.Close()
		return nil, err
	}

	return &App{engine: engine, host: profileHost, state: state, logger: logger}, nil
}

func (a *App) Engine() *service.Engine {
	return a.engine
}

func (a *App) Host() *host.ProfileHost {
	return a.host
}

// RunDaemon keeps the auto-sync job running and additionally syncs the
// active domain whenever the host profile changes on disk. It blocks until
// ctx is done.
func (a *App) RunDaemon(ctx context.Context) error {
	if err := a.engine.StartAutoSync(ctx); err != nil {
		return fmt.Errorf("start auto sync: %w", err)
	}
	defer a.engine.StopAutoSync()

	a.logger.Info().Str("profile", a.host.Path()).Msg("daemon started")

	err := a.host.Watch(ctx, func() {
		res := a.engine.PerformAutoSync(ctx)
		a.logResult(res)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	a.logger.Info().Msg("daemon stopped")
	return nil
}

func (a *App) logResult(res models.SyncResult) {
	ev := a.logger.Info()
	if res.Err != nil {
		ev = a.logger.Warn().Err(res.Err)
	}
	ev.Str("trigger", "profile changed").
		Str("domain", res.Domain).
		Bool("success", res.Success).
		Str("action", string(res.Action)).
		Str("reason", res.Reason).
		Msg("auto sync")
}

func (a *App) Close() error {
	a.engine.StopAutoSync()
	return a.state.Close()
}
