// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/fsnotify/fsnotify"
)

// ErrNoActiveDocument is returned by writes when the profile has no active
// document.
var ErrNoActiveDocument = errors.New("no active document")

// Profile is the on-disk state of a [ProfileHost]. Key-value stores are
// keyed by document host.
type Profile struct {
	ActiveURL    string                       `json:"activeUrl,omitempty"`
	Cookies      []models.Cookie              `json:"cookies"`
	LocalStorage map[string]map[string]string `json:"localStorage"`
}

func emptyProfile() Profile {
	return Profile{Cookies: []models.Cookie{}, LocalStorage: map[string]map[string]string{}}
}

// ProfileHost is a [Host] backed by a JSON profile file. Edits made to the
// file by other programs are picked up by [ProfileHost.Watch].
type ProfileHost struct {
	path string

	mu      sync.RWMutex
	profile Profile
	// lastRaw is the file content last read or written by this process
	lastRaw []byte

	logger *logger.Logger
}

// NewProfileHost loads the profile at path. A missing file is an empty
// profile; it is created on the first write.
func NewProfileHost(path string, logger *logger.Logger) (*ProfileHost, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve profile path: %w", err)
	}

	h := &ProfileHost{path: abs, profile: emptyProfile(), logger: logger}
	if _, err = h.reload(); err != nil {
		return nil, err
	}
	return h, nil
}

// Path returns the absolute path of the profile file.
func (h *ProfileHost) Path() string {
	return h.path
}

// reload reads the file and reports whether its content changed since the
// last read or write.
func (h *ProfileHost) reload() (bool, error) {
	raw, err := os.ReadFile(h.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read profile: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// an empty file is a write in progress
	if bytes.Equal(raw, h.lastRaw) || len(bytes.TrimSpace(raw)) == 0 {
		return false, nil
	}

	p := emptyProfile()
	if err = json.Unmarshal(raw, &p); err != nil {
		return false, fmt.Errorf("decode profile %s: %w", h.path, err)
	}
	if p.Cookies == nil {
		p.Cookies = []models.Cookie{}
	}
	if p.LocalStorage == nil {
		p.LocalStorage = map[string]map[string]string{}
	}

	h.profile = p
	h.lastRaw = raw
	return true, nil
}

// saveLocked writes the profile through a temporary file. h.mu must be held.
func (h *ProfileHost) saveLocked() error {
	raw, err := json.MarshalIndent(h.profile, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(h.path), 0o700); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(h.path), ".profile-*.json")
	if err != nil {
		return fmt.Errorf("create temp profile: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp profile: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp profile: %w", err)
	}
	if err = os.Rename(tmp.Name(), h.path); err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}

	h.lastRaw = raw
	return nil
}

// ActiveDocument implements [Host].
func (h *ProfileHost) ActiveDocument(_ context.Context) (*models.Document, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.profile.ActiveURL == "" {
		return nil, nil
	}

	doc := models.Document{URL: h.profile.ActiveURL}
	doc.ID = doc.Domain()
	if doc.ID == "" {
		return nil, fmt.Errorf("active url %q has no host", h.profile.ActiveURL)
	}
	return &doc, nil
}

// SetActiveURL makes rawURL the active document and persists the profile.
// An empty rawURL clears it.
func (h *ProfileHost) SetActiveURL(_ context.Context, rawURL string) error {
	if rawURL != "" {
		u, err := url.Parse(rawURL)
		if err != nil || u.Hostname() == "" {
			return fmt.Errorf("invalid document url %q", rawURL)
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.profile.ActiveURL = rawURL
	return h.saveLocked()
}

// CookiesByURL implements [Host].
func (h *ProfileHost) CookiesByURL(_ context.Context, rawURL string) ([]models.Cookie, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return nil, fmt.Errorf("invalid cookie url %q", rawURL)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]models.Cookie, 0, len(h.profile.Cookies))
	for _, c := range h.profile.Cookies {
		if sentTo(c, u) {
			out = append(out, c)
		}
	}
	return out, nil
}

// CookiesByDomain implements [Host].
func (h *ProfileHost) CookiesByDomain(_ context.Context, domain string) ([]models.Cookie, error) {
	if NormalizeDomain(domain) == "" {
		return nil, fmt.Errorf("empty cookie domain")
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]models.Cookie, 0, len(h.profile.Cookies))
	for _, c := range h.profile.Cookies {
		if DomainMatches(c.Domain, domain) {
			out = append(out, c)
		}
	}
	return out, nil
}

// ReadKeyValueStore implements [Host].
func (h *ProfileHost) ReadKeyValueStore(_ context.Context, doc models.Document) (map[string]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	store := h.profile.LocalStorage[documentKey(doc)]
	if store == nil {
		return map[string]string{}, nil
	}
	return maps.Clone(store), nil
}

// ApplyToDocument implements [Host]. Cookies without a domain attribute are
// set for the document host; an existing cookie with the same name, domain
// and path is replaced.
func (h *ProfileHost) ApplyToDocument(_ context.Context, doc models.Document, cookieLines []string, entries map[string]string) error {
	key := documentKey(doc)
	if key == "" {
		return ErrNoActiveDocument
	}

	parsed := make([]models.Cookie, 0, len(cookieLines))
	for _, line := range cookieLines {
		c, err := ParseCookieLine(line)
		if err != nil {
			return err
		}
		if c.Domain == "" {
			c.Domain = key
		}
		parsed = append(parsed, c)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, c := range parsed {
		h.upsertCookieLocked(c)
	}

	if len(entries) > 0 {
		store := h.profile.LocalStorage[key]
		if store == nil {
			store = make(map[string]string, len(entries))
			h.profile.LocalStorage[key] = store
		}
		maps.Copy(store, entries)
	}

	return h.saveLocked()
}

func (h *ProfileHost) upsertCookieLocked(c models.Cookie) {
	for i, existing := range h.profile.Cookies {
		if existing.Key() == c.Key() {
			h.profile.Cookies[i] = c
			return
		}
	}
	h.profile.Cookies = append(h.profile.Cookies, c)
}

// Snapshot returns a deep copy of the loaded profile.
func (h *ProfileHost) Snapshot() Profile {
	h.mu.RLock()
	defer h.mu.RUnlock()

	p := Profile{
		ActiveURL:    h.profile.ActiveURL,
		Cookies:      append([]models.Cookie(nil), h.profile.Cookies...),
		LocalStorage: make(map[string]map[string]string, len(h.profile.LocalStorage)),
	}
	for k, v := range h.profile.LocalStorage {
		p.LocalStorage[k] = maps.Clone(v)
	}
	return p
}

// Watch reloads the profile whenever the file changes on disk and calls
// onChange after each reload that brought new content. Writes made by this
// host do not trigger onChange. Watch blocks until ctx is done.
func (h *ProfileHost) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create profile watcher: %w", err)
	}
	defer watcher.Close()

	// the directory is watched since the file is replaced by rename
	if err = os.MkdirAll(filepath.Dir(h.path), 0o700); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}
	if err = watcher.Add(filepath.Dir(h.path)); err != nil {
		return fmt.Errorf("watch profile dir: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != h.path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}

			changed, err := h.reload()
			if err != nil {
				h.logger.Warn().Err(err).Str("func", "*ProfileHost.Watch").Msg("profile reload failed")
				continue
			}
			if changed {
				h.logger.Debug().Str("path", h.path).Msg("profile reloaded")
				if onChange != nil {
					onChange()
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			h.logger.Warn().Err(err).Str("func", "*ProfileHost.Watch").Msg("profile watcher error")
		}
	}
}

func documentKey(doc models.Document) string {
	if doc.ID != "" {
		return NormalizeDomain(doc.ID)
	}
	return doc.Domain()
}
