package service

import (
	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-sync/internal/host"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/store"
)

// ClientServices groups the client services. SyncJob is left nil here and
// filled in by [NewEngine].
type ClientServices struct {
	ConfigService   ClientConfigService
	PassService     ClientPassService
	SnapshotService ClientSnapshotService
	VersionService  ClientVersionService
	SyncService     ClientSyncService
	SyncJob         ClientSyncJob
}

func NewClientServices(
	stateStore store.StateStore,
	serverAdapter adapter.ServerAdapter,
	h host.Host,
	codec crypto.Codec,
	params crypto.ArgonParams,
	logger *logger.Logger,
) *ClientServices {
	configSvc := NewClientConfigService(stateStore, logger)
	passSvc := NewClientPassService(configSvc, serverAdapter, logger)
	snapshotSvc := NewClientSnapshotService(h, configSvc, logger)
	versionSvc := NewClientVersionService(stateStore, configSvc, logger)
	syncSvc := NewClientSyncService(configSvc, snapshotSvc, versionSvc, serverAdapter, codec, params, logger)

	return &ClientServices{
		ConfigService:   configSvc,
		PassService:     passSvc,
		SnapshotService: snapshotSvc,
		VersionService:  versionSvc,
		SyncService:     syncSvc,
	}
}
