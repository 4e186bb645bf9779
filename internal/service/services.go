package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/store"
)

// Services groups the server-side services.
type Services struct {
	PassService    PassService
	DataService    DataService
	AdminService   AdminService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	data := NewDataValidationService(cfg.Limits.MaxDataSize).
		Wrap(NewDataService(storages.DataRepository, storages.PassRepository, cfg.Limits, logger))

	return &Services{
		PassService:    NewPassService(storages.PassRepository, storages.DataRepository, logger),
		DataService:    data,
		AdminService:   NewAdminService(storages.PassRepository, cfg.App, logger),
		AppInfoService: appInfo,
	}, nil
}
