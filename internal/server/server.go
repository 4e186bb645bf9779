package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/handler"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
)

const shutdownTimeout = 15 * time.Second

var errNoHTTPServer = errors.New("no http server configured: address or handlers missing")

type server struct {
	httpServer *httpServer
	workers    BackgroundWorkers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, workers BackgroundWorkers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{workers: workers, logger: logger}

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoHTTPServer
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown(ctx context.Context) {
	if s.httpServer != nil {
		s.httpServer.Shutdown(ctx)
	}
	if s.workers != nil {
		s.workers.Stop(ctx)
	}
}

// run blocks until ctx is cancelled or the listener fails, then shuts
// everything down within shutdownTimeout.
func (s *server) run(ctx context.Context) error {
	if s.workers != nil {
		if err := s.workers.Run(); err != nil {
			return fmt.Errorf("error starting workers: %w", err)
		}
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case err = <-serveErr:
		if err != nil {
			err = fmt.Errorf("HTTP server stopped: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.Shutdown(shutdownCtx)

	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}
