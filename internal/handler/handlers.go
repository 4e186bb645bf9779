// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transports of the reference sync server.
package handler

import (
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/handler/http"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/service"
)

// errNoHandlersAreCreated is returned when no transport can be built. The
// server refuses to start without one.
var errNoHandlersAreCreated = errors.New("no handlers are created")

// Handlers holds the transports the server listens on. Only HTTP exists
// today; the pass, data and admin APIs all live on it.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	addr := cfg.Server.HTTPAddress
	if addr == "" {
		return nil, errNoHandlersAreCreated
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return nil, fmt.Errorf("%w: http address %q: %w", errNoHandlersAreCreated, addr, err)
	}

	logger.Info().
		Str("http_address", addr).
		Float64("rate_per_second", cfg.Limits.RatePerSecond).
		Int64("max_data_size", cfg.Limits.MaxDataSize).
		Msg("creating http handler")

	return &Handlers{HTTP: http.NewHandler(services, cfg.Limits, logger)}, nil
}
