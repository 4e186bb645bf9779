package models

// SyncAction is the direction chosen for a sync.
type SyncAction string

const (
	ActionNone     SyncAction = "none"
	ActionUpload   SyncAction = "upload"
	ActionDownload SyncAction = "download"
)

// Reasons reported alongside a [SyncResult].
const (
	ReasonSyncDisabled       = "sync disabled for domain"
	ReasonNoServerConfigured = "no server configured"
	ReasonNoRemoteData       = "no remote data"
	ReasonFirstSync          = "first sync trusts server"
	ReasonIdentical          = "local and remote are identical"
	ReasonRemoteNewer        = "remote is newer"
	ReasonLocalNewer         = "local is newer"
	ReasonForced             = "forced by user"
	ReasonNoActiveDomain     = "no active domain"
)

// Decision is the outcome of the direction decision.
type Decision struct {
	Action SyncAction
	Reason string
}

// SyncResult is returned by every sync entry point. Failures are reported
// here instead of as errors so callers never have to handle a panic-worthy
// path.
type SyncResult struct {
	Domain  string     `json:"domain"`
	Success bool       `json:"success"`
	Skipped bool       `json:"skipped,omitempty"`
	Action  SyncAction `json:"action,omitempty"`
	Reason  string     `json:"reason,omitempty"`
	Error   string     `json:"error,omitempty"`
	Err     error      `json:"-"`
}

// Succeeded builds a successful result.
func Succeeded(domain string, d Decision) SyncResult {
	return SyncResult{Domain: domain, Success: true, Action: d.Action, Reason: d.Reason}
}

// SkippedResult builds a skip outcome.
func SkippedResult(domain, reason string) SyncResult {
	return SyncResult{Domain: domain, Skipped: true, Reason: reason}
}

// FailedResult builds a failed result from err.
func FailedResult(domain string, err error) SyncResult {
	return SyncResult{Domain: domain, Error: err.Error(), Err: err}
}
