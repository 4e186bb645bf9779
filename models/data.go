package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dataIDPrefix is prepended to entry ids on the wire ("data_42").
const dataIDPrefix = "data_"

// DataEntry is one uploaded payload as stored by the server.
type DataEntry struct {
	ID        int64
	Pass      Pass
	Domain    string
	Data      string
	Size      int64
	CreatedAt time.Time
}

// PublicID renders the entry id the way clients see it.
func (e DataEntry) PublicID() string {
	return FormatDataID(e.ID)
}

// FormatDataID renders a numeric entry id as "data_N".
func FormatDataID(id int64) string {
	return dataIDPrefix + strconv.FormatInt(id, 10)
}

// ParseDataID accepts "data_N" or a bare "N".
func ParseDataID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(s), dataIDPrefix), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid data id %q", s)
	}
	return id, nil
}

// PassStats aggregates what a pass holds on the server.
type PassStats struct {
	Pass         Pass
	TotalSize    int64
	LastActivity *time.Time
	Domains      []DomainUsage
}

// DomainUsage aggregates the entries of one domain under a pass.
type DomainUsage struct {
	Domain       string
	VersionCount int
	Size         int64
	LastModified time.Time
}

// ServerStats aggregates usage over all passes.
type ServerStats struct {
	TotalPasses  int64
	TotalDomains int64
	TotalSize    int64

	// limits the server enforces
	MaxDataSize int64
	MaxVersions int
}

// QuickAccess is the newest entry of a domain, opened server-side when the
// caller supplied a key.
type QuickAccess struct {
	Entry     DataEntry
	Decrypted bool
	// Data holds the decrypted JSON object when Decrypted is set.
	Data json.RawMessage
}
