package models

import (
	"fmt"
	"time"
)

// VersionType is the category a [VersionEntry] belongs to.
type VersionType string

const (
	VersionCookie        VersionType = "cookie"
	VersionKeyValueStore VersionType = "keyValueStore"
)

// VersionEntry is one retained historical snapshot part. Entries are never
// mutated after creation.
type VersionEntry struct {
	ID          string      `json:"id"`
	Domain      string      `json:"domain"`
	Type        VersionType `json:"type"`
	Source      SyncSource  `json:"source"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     string      `json:"payload"`
	Encrypted   bool        `json:"encrypted"`
	ContentHash string      `json:"contentHash"`
}

// VersionCacheKey builds the "{domain}:{type}" key entries are grouped under.
func VersionCacheKey(domain string, t VersionType) string {
	return fmt.Sprintf("%s:%s", domain, t)
}

// VersionInfo describes one version as listed to the user, either from the
// server or from the local cache.
type VersionInfo struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Size      int         `json:"size"`
	Source    SyncSource  `json:"source"`
	Type      VersionType `json:"type,omitempty"`
}
