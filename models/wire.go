package models

import (
	"encoding/json"
	"time"
)

// ProtocolVersion is the version of the sync protocol spoken by this module.
// Servers advertise the range of protocol versions they accept.
const ProtocolVersion = "1.0.0"

// ProtocolHeader carries [ProtocolVersion] on every client request.
const ProtocolHeader = "X-Pass-Sync-Protocol"

// HealthResponse is returned by GET /health. Clients is a version constraint
// on [ProtocolVersion]; servers that predate it leave it empty.
type HealthResponse struct {
	Status    string     `json:"status"`
	Timestamp ServerTime `json:"timestamp"`
	Version   string     `json:"version"`
	Clients   string     `json:"clients,omitempty"`
}

// CreatePassResponse is returned by POST /api/pass/create. Older servers
// answer with "pass_id" instead of "pass".
type CreatePassResponse struct {
	Pass      Pass       `json:"pass"`
	PassID    Pass       `json:"pass_id,omitempty"`
	CreatedAt ServerTime `json:"created_at"`
}

// Token returns whichever pass field the server filled.
func (r CreatePassResponse) Token() Pass {
	if !r.Pass.IsZero() {
		return r.Pass
	}
	return r.PassID
}

// CheckPassResponse is returned by GET /api/pass/{pass}/check.
type CheckPassResponse struct {
	Exists    bool        `json:"exists"`
	CreatedAt *ServerTime `json:"created_at,omitempty"`
	Domains   []string    `json:"domains,omitempty"`
}

// DataResponse is returned by GET /api/data/{pass} and
// GET /api/data/{pass}/version/{id}. Data is kept raw because servers send
// either a JSON string or an inline object.
type DataResponse struct {
	ID        string          `json:"id,omitempty"`
	Data      json.RawMessage `json:"data"`
	Timestamp ServerTime      `json:"timestamp"`
}

// Payload returns Data as the string that was uploaded.
func (r DataResponse) Payload() string {
	var s string
	if err := json.Unmarshal(r.Data, &s); err == nil {
		return s
	}
	return string(r.Data)
}

// UploadDataRequest is the body of POST /api/data/{pass}.
type UploadDataRequest struct {
	Data string `json:"data"`
}

// UploadDataResponse acknowledges an upload.
type UploadDataResponse struct {
	Success   bool       `json:"success"`
	ID        string     `json:"id"`
	Timestamp ServerTime `json:"timestamp"`
}

// VersionsResponse is returned by GET /api/data/{pass}/versions.
type VersionsResponse struct {
	Versions []RemoteVersion `json:"versions"`
}

// RemoteVersion is one entry of a server version listing.
type RemoteVersion struct {
	ID        string     `json:"id"`
	Timestamp ServerTime `json:"timestamp"`
	Size      int        `json:"size"`
}

// DeleteDataResponse is returned by DELETE /api/data/{pass}.
type DeleteDataResponse struct {
	Success      bool  `json:"success"`
	DeletedCount int64 `json:"deleted_count"`
}

// DomainStats aggregates the entries stored for one domain.
type DomainStats struct {
	Domain       string     `json:"domain"`
	VersionCount int        `json:"version_count"`
	Size         int64      `json:"size"`
	LastModified ServerTime `json:"last_modified"`
}

// PassStatsResponse is returned by GET /api/stats/{pass}.
type PassStatsResponse struct {
	Pass         Pass          `json:"pass"`
	DomainCount  int           `json:"domain_count"`
	TotalSize    int64         `json:"total_size"`
	LastActivity *ServerTime   `json:"last_activity,omitempty"`
	Domains      []DomainStats `json:"domains"`
}

// ServerStatsResponse is returned by GET /api/stats/server.
type ServerStatsResponse struct {
	TotalPasses          int64 `json:"total_passes"`
	TotalDomains         int64 `json:"total_domains"`
	TotalSizeBytes       int64 `json:"total_size_bytes"`
	MaxDataSize          int64 `json:"max_data_size"`
	MaxVersionsPerDomain int   `json:"max_versions_per_domain"`
}

// QuickAccessResponse is the JSON flavour of GET /api/quick/{pass}.
type QuickAccessResponse struct {
	Success       bool            `json:"success"`
	Domain        string          `json:"domain"`
	Pass          Pass            `json:"pass_id"`
	Timestamp     ServerTime      `json:"timestamp"`
	Decrypted     bool            `json:"decrypted"`
	Data          json.RawMessage `json:"data,omitempty"`
	EncryptedData string          `json:"encrypted_data,omitempty"`
	Message       string          `json:"message,omitempty"`
}

// ErrorResponse is the body of every non-2xx JSON answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AdminLoginRequest is the body of POST /admin/login.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminLoginResponse carries the issued admin bearer token.
type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AdminPassesResponse lists every pass with usage.
type AdminPassesResponse struct {
	Passes []PassSummary `json:"passes"`
	Total  int           `json:"total"`
}

// AdminDeletePassResponse acknowledges a pass removal.
type AdminDeletePassResponse struct {
	Success        bool  `json:"success"`
	DeletedEntries int64 `json:"deleted_entries"`
}
