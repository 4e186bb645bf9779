package models

import (
	"encoding/json"
	"time"
)

// Snapshot is a point-in-time capture of a domain's cookies and key-value
// store. The JSON layout matches what browser clients upload.
type Snapshot struct {
	Cookies       map[string]string `json:"cookies"`
	KeyValueStore map[string]string `json:"localStorage"`
	Timestamp     time.Time         `json:"timestamp"`
}

// SnapshotContent is the part of a snapshot that takes part in equality.
type SnapshotContent struct {
	Cookies       map[string]string `json:"cookies"`
	KeyValueStore map[string]string `json:"localStorage"`
}

// NewSnapshot returns an empty snapshot stamped with at.
func NewSnapshot(at time.Time) Snapshot {
	return Snapshot{
		Cookies:       map[string]string{},
		KeyValueStore: map[string]string{},
		Timestamp:     at,
	}
}

// Content strips the timestamp. Nil maps are normalized to empty ones so that
// hashing does not distinguish null from {}.
func (s Snapshot) Content() SnapshotContent {
	c := SnapshotContent{Cookies: s.Cookies, KeyValueStore: s.KeyValueStore}
	if c.Cookies == nil {
		c.Cookies = map[string]string{}
	}
	if c.KeyValueStore == nil {
		c.KeyValueStore = map[string]string{}
	}
	return c
}

// Masked keeps only the categories enabled in cfg.
func (s Snapshot) Masked(cfg DomainConfig) Snapshot {
	out := NewSnapshot(s.Timestamp)
	if cfg.CookieSyncEnabled {
		for k, v := range s.Cookies {
			out.Cookies[k] = v
		}
	}
	if cfg.StorageSyncEnabled {
		for k, v := range s.KeyValueStore {
			out.KeyValueStore[k] = v
		}
	}
	return out
}

// Part returns the map stored under the given version type.
func (s Snapshot) Part(t VersionType) map[string]string {
	if t == VersionCookie {
		return s.Cookies
	}
	return s.KeyValueStore
}

// DecodeSnapshot parses a decrypted payload. Unknown fields are ignored and
// missing maps become empty.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var wire struct {
		Cookies       map[string]string `json:"cookies"`
		KeyValueStore map[string]string `json:"localStorage"`
		Timestamp     ServerTime        `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return Snapshot{}, err
	}

	s := Snapshot{Cookies: wire.Cookies, KeyValueStore: wire.KeyValueStore, Timestamp: wire.Timestamp.Time}
	if s.Cookies == nil {
		s.Cookies = map[string]string{}
	}
	if s.KeyValueStore == nil {
		s.KeyValueStore = map[string]string{}
	}
	return s, nil
}

// RemoteData is the latest record the server holds for a domain.
type RemoteData struct {
	ID        string
	Timestamp time.Time
	// Payload is the raw data string, either JSON or an encrypted envelope.
	Payload  string
	Snapshot Snapshot
}
