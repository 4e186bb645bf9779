package http

import (
	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/service"
)

type Handler struct {
	services *service.Services
	limits   config.Limits

	limiter *ipRateLimiter
	metrics *metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, limits config.Limits, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limits:   limits,
		limiter:  newIPRateLimiter(limits.RatePerSecond, limits.RateBurst),
		metrics:  newMetrics(),
		logger:   logger,
	}
}
