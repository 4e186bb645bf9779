package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/hashicorp/go-version"
)

type appInfoService struct {
	appVersion string
	clientsRaw string
	clients    version.Constraints

	now    func() time.Time
	logger *logger.Logger
}

// NewAppInfoService validates the build version and the supported clients
// range. An empty range accepts every client.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	raw := strings.TrimSpace(cfg.SupportedClients)
	var clients version.Constraints
	if raw != "" {
		var err error
		if clients, err = version.NewConstraint(raw); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidClientRange, raw, err)
		}
		if !clients.Check(version.Must(version.NewVersion(models.ProtocolVersion))) {
			logger.Warn().Str("clients", raw).Str("protocol", models.ProtocolVersion).
				Msg("supported clients range excludes the protocol this server speaks")
		}
	}

	return &appInfoService{
		appVersion: cfg.Version,
		clientsRaw: raw,
		clients:    clients,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}, nil
}

func (s *appInfoService) Health(_ context.Context) models.HealthResponse {
	res := models.HealthResponse{
		Status:    "ok",
		Timestamp: models.ServerTime{Time: s.now()},
		Version:   s.appVersion,
	}
	if len(s.clients) > 0 {
		res.Clients = s.clientsRaw
	}
	return res
}

func (s *appInfoService) AcceptsClient(v string) bool {
	if len(s.clients) == 0 {
		return true
	}
	parsed, err := version.NewVersion(v)
	if err != nil {
		return false
	}
	return s.clients.Check(parsed)
}
