// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Pass is the opaque token minted by the server. Whoever holds the string has
// full read/write access to the data stored under it.
type Pass string

// String returns the raw token.
func (p Pass) String() string {
	return string(p)
}

// IsZero reports whether no pass is set.
func (p Pass) IsZero() bool {
	return p == ""
}

// Masked returns a shortened form suitable for logs and status lines.
func (p Pass) Masked() string {
	if len(p) <= 8 {
		return "****"
	}
	return string(p[:4]) + "…" + string(p[len(p)-4:])
}

// StoredPass is a pass record as the server keeps it.
type StoredPass struct {
	ID        int64     `json:"-"`
	Pass      Pass      `json:"pass"`
	CreatedAt time.Time `json:"created_at"`
}

// PassSummary is a pass with aggregated usage, used by the admin listing.
type PassSummary struct {
	Pass         Pass       `json:"pass"`
	CreatedAt    time.Time  `json:"created_at"`
	DomainCount  int        `json:"domain_count"`
	EntryCount   int        `json:"entry_count"`
	TotalSize    int64      `json:"total_size"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}

// PassInfo answers whether a pass is known and which domains it holds.
type PassInfo struct {
	Exists  bool
	Pass    StoredPass
	Domains []string
}
