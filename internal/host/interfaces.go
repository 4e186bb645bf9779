// Package host defines the runtime the sync engine reads snapshots from and
// writes downloaded data into, together with a file-backed implementation.
//
// A host exposes the cookie jar, a key-value store per document and the
// notion of a currently active document. Every call returns an error next to
// its result; the engine decides which failures it swallows.
package host

import (
	"context"

	"github.com/MKhiriev/go-pass-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/host_mock.go -package=mock

// Host is the runtime collaborator of the sync engine.
type Host interface {
	// ActiveDocument returns the active document, or nil when there is none.
	ActiveDocument(ctx context.Context) (*models.Document, error)
	// CookiesByURL returns the cookies a request to rawURL would carry.
	CookiesByURL(ctx context.Context, rawURL string) ([]models.Cookie, error)
	// CookiesByDomain returns the cookies set for domain or any subdomain.
	CookiesByDomain(ctx context.Context, domain string) ([]models.Cookie, error)
	// ReadKeyValueStore returns the key-value store of doc.
	ReadKeyValueStore(ctx context.Context, doc models.Document) (map[string]string, error)
	// ApplyToDocument writes inside doc the way page code would: each cookie
	// line is assigned like document.cookie and each entry is set in the
	// key-value store.
	ApplyToDocument(ctx context.Context, doc models.Document, cookieLines []string, entries map[string]string) error
}
