package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Keys the engine persists its state under.
const (
	KeySyncConfig     = "syncConfig"
	KeyDomainConfigs  = "domainConfigs"
	KeyVersionCache   = "versionCache"
	KeyMaxValueLength = "maxValueLength"
)

// StateStore persists small JSON blobs across restarts of the client.
type StateStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
