// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-sync/internal/host"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
	"golang.org/x/sync/errgroup"
)

type clientSnapshotService struct {
	host   host.Host
	config ClientConfigService
	now    func() time.Time

	logger *logger.Logger
}

func NewClientSnapshotService(h host.Host, config ClientConfigService, logger *logger.Logger) ClientSnapshotService {
	return &clientSnapshotService{
		host:   h,
		config: config,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// CookieDomainVariants lists the domain forms cookies of domain may be stored
// under, without duplicates and in lookup order.
func CookieDomainVariants(domain string) []string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return nil
	}

	variants := make([]string, 0, 6)
	add := func(d string) {
		if d != "" && d != "." && !slices.Contains(variants, d) {
			variants = append(variants, d)
		}
	}
	addWithDot := func(d string) {
		add(d)
		if !strings.HasPrefix(d, ".") {
			add("." + d)
		}
	}

	addWithDot(domain)

	bare := strings.TrimPrefix(domain, ".")
	// parent and www-less forms only for names of three or more labels
	if labels := strings.Split(bare, "."); len(labels) > 2 {
		addWithDot(strings.Join(labels[1:], "."))
		if rest, ok := strings.CutPrefix(bare, "www."); ok {
			addWithDot(rest)
		}
	}

	return variants
}

// activeDocumentFor returns the active document when it belongs to domain.
func (s *clientSnapshotService) activeDocumentFor(ctx context.Context, domain string) *models.Document {
	doc, err := s.host.ActiveDocument(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*clientSnapshotService.activeDocumentFor").Msg("host could not report the active document")
		return nil
	}
	if doc == nil || !strings.EqualFold(doc.Domain(), host.NormalizeDomain(domain)) {
		return nil
	}
	return doc
}

// CaptureLocal reads the cookies and the key-value store of domain. Host
// failures degrade to empty results; only cancellation is an error.
func (s *clientSnapshotService) CaptureLocal(ctx context.Context, domain string) (models.Snapshot, error) {
	doc := s.activeDocumentFor(ctx, domain)
	snapshot := models.NewSnapshot(s.now())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snapshot.Cookies = s.captureCookies(gctx, domain, doc)
		return nil
	})
	g.Go(func() error {
		snapshot.KeyValueStore = s.captureKeyValues(gctx, doc)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return models.Snapshot{}, err
	}
	return snapshot, nil
}

func (s *clientSnapshotService) captureCookies(ctx context.Context, domain string, doc *models.Document) map[string]string {
	variants := CookieDomainVariants(domain)

	// slot 0 holds the url lookup, the rest follow variants
	lookups := make([][]models.Cookie, len(variants)+1)

	g, gctx := errgroup.WithContext(ctx)
	if doc != nil {
		g.Go(func() error {
			cookies, err := s.host.CookiesByURL(gctx, doc.URL)
			if err != nil {
				s.logger.Debug().Err(err).Str("url", doc.URL).Msg("cookie lookup by url failed")
				return nil
			}
			lookups[0] = cookies
			return nil
		})
	}
	for i, variant := range variants {
		g.Go(func() error {
			cookies, err := s.host.CookiesByDomain(gctx, variant)
			if err != nil {
				s.logger.Debug().Err(err).Str("domain", variant).Msg("cookie lookup by domain failed")
				return nil
			}
			lookups[i+1] = cookies
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[models.CookieKey]struct{})
	flat := make(map[string]string)
	for _, cookies := range lookups {
		for _, c := range cookies {
			if _, dup := seen[c.Key()]; dup {
				continue
			}
			seen[c.Key()] = struct{}{}
			flat[c.Name] = c.Value
		}
	}
	return flat
}

func (s *clientSnapshotService) captureKeyValues(ctx context.Context, doc *models.Document) map[string]string {
	out := make(map[string]string)
	if doc == nil {
		return out
	}

	entries, err := s.host.ReadKeyValueStore(ctx, *doc)
	if err != nil {
		s.logger.Debug().Err(err).Str("document", doc.ID).Msg("key-value store read failed")
		return out
	}

	limit := s.config.MaxValueLength()
	for k, v := range entries {
		if utf8.RuneCountInString(v) > limit {
			continue
		}
		out[k] = v
	}
	return out
}

// ApplyRemote writes snapshot into the active document. Nothing happens when
// the active document belongs to another domain.
func (s *clientSnapshotService) ApplyRemote(ctx context.Context, domain string, snapshot models.Snapshot) error {
	doc, err := s.host.ActiveDocument(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHostCollaborator, err)
	}
	if doc == nil || !strings.EqualFold(doc.Domain(), host.NormalizeDomain(domain)) {
		s.logger.Debug().Str("domain", domain).Msg("active document belongs to another domain, nothing applied")
		return nil
	}

	lines := make([]string, 0, len(snapshot.Cookies))
	for _, name := range slices.Sorted(maps.Keys(snapshot.Cookies)) {
		lines = append(lines, fmt.Sprintf("%s=%s; path=/", name, snapshot.Cookies[name]))
	}

	entries := maps.Clone(snapshot.KeyValueStore)
	if entries == nil {
		entries = map[string]string{}
	}

	if err = s.host.ApplyToDocument(ctx, *doc, lines, entries); err != nil {
		return fmt.Errorf("%w: %w", ErrHostCollaborator, err)
	}
	return nil
}

func (s *clientSnapshotService) ActiveDomain(ctx context.Context) (string, error) {
	doc, err := s.host.ActiveDocument(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHostCollaborator, err)
	}
	if doc == nil {
		return "", nil
	}
	return doc.Domain(), nil
}
