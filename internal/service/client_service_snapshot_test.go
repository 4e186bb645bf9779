package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/mock"
	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCookieDomainVariants(t *testing.T) {
	tests := []struct {
		domain string
		want   []string
	}{
		{"www.shop.example.com", []string{"www.shop.example.com", ".www.shop.example.com", "shop.example.com", ".shop.example.com"}},
		{"www.example.com", []string{"www.example.com", ".www.example.com", "example.com", ".example.com"}},
		{"shop.example.com", []string{"shop.example.com", ".shop.example.com", "example.com", ".example.com"}},
		{"example.com", []string{"example.com", ".example.com"}},
		{"localhost", []string{"localhost", ".localhost"}},
		// две метки: www не отрезается
		{"www.example", []string{"www.example", ".www.example"}},
		{".example.com", []string{".example.com"}},
		{"Example.COM", []string{"example.com", ".example.com"}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			assert.Equal(t, tt.want, CookieDomainVariants(tt.domain))
		})
	}
}

func newSnapshotFixture(t *testing.T) (*mock.MockHost, ClientConfigService, ClientSnapshotService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := mock.NewMockHost(ctrl)
	cfg := NewClientConfigService(store.NewMemoryStateStore(), logger.Nop())
	return h, cfg, NewClientSnapshotService(h, cfg, logger.Nop())
}

func TestClientSnapshotService_CaptureLocal_ActiveDocument(t *testing.T) {
	h, cfg, svc := newSnapshotFixture(t)
	ctx := context.Background()
	require.NoError(t, cfg.SetMaxValueLength(ctx, 10))

	doc := &models.Document{ID: "www.example.com", URL: "https://www.example.com/cart"}
	h.EXPECT().ActiveDocument(gomock.Any()).Return(doc, nil)
	h.EXPECT().CookiesByURL(gomock.Any(), doc.URL).Return([]models.Cookie{
		{Name: "sid", Value: "from-url", Domain: "www.example.com", Path: "/"},
	}, nil)
	h.EXPECT().CookiesByDomain(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d string) ([]models.Cookie, error) {
		switch d {
		case "www.example.com":
			// тот же (name, domain, path), дубликат, пропускается
			return []models.Cookie{{Name: "sid", Value: "dup", Domain: "www.example.com", Path: "/"}}, nil
		case ".example.com":
			return []models.Cookie{{Name: "theme", Value: "dark", Domain: ".example.com", Path: "/"}}, nil
		case "example.com":
			return nil, assert.AnError
		}
		return nil, nil
	}).Times(4)
	h.EXPECT().ReadKeyValueStore(gomock.Any(), *doc).Return(map[string]string{
		"token": "abc",
		"blob":  strings.Repeat("x", 11),
	}, nil)

	snap, err := svc.CaptureLocal(ctx, "www.example.com")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"sid": "from-url", "theme": "dark"}, snap.Cookies)
	assert.Equal(t, map[string]string{"token": "abc"}, snap.KeyValueStore)
	assert.False(t, snap.Timestamp.IsZero())
}

func TestClientSnapshotService_CaptureLocal_LaterCookieOverwritesName(t *testing.T) {
	h, _, svc := newSnapshotFixture(t)

	h.EXPECT().ActiveDocument(gomock.Any()).Return(nil, nil)
	h.EXPECT().CookiesByDomain(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d string) ([]models.Cookie, error) {
		switch d {
		case "example.com":
			return []models.Cookie{{Name: "lang", Value: "en", Domain: "example.com", Path: "/"}}, nil
		case ".example.com":
			return []models.Cookie{{Name: "lang", Value: "de", Domain: ".example.com", Path: "/"}}, nil
		}
		return nil, nil
	}).Times(2)

	snap, err := svc.CaptureLocal(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"lang": "de"}, snap.Cookies)
	assert.Empty(t, snap.KeyValueStore)
}

func TestClientSnapshotService_CaptureLocal_OtherDomainActive(t *testing.T) {
	h, _, svc := newSnapshotFixture(t)

	// активная вкладка другого домена: ни URL-кук, ни хранилища
	h.EXPECT().ActiveDocument(gomock.Any()).Return(&models.Document{ID: "other.org", URL: "https://other.org/"}, nil)
	h.EXPECT().CookiesByDomain(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	snap, err := svc.CaptureLocal(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Empty(t, snap.Cookies)
	assert.Empty(t, snap.KeyValueStore)
}

func TestClientSnapshotService_CaptureLocal_HostFailuresSwallowed(t *testing.T) {
	h, _, svc := newSnapshotFixture(t)

	doc := &models.Document{ID: "example.com", URL: "https://example.com/"}
	h.EXPECT().ActiveDocument(gomock.Any()).Return(doc, nil)
	h.EXPECT().CookiesByURL(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
	h.EXPECT().CookiesByDomain(gomock.Any(), gomock.Any()).Return(nil, assert.AnError).Times(2)
	h.EXPECT().ReadKeyValueStore(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	snap, err := svc.CaptureLocal(context.Background(), "example.com")
	require.NoError(t, err)
	assert.NotNil(t, snap.Cookies)
	assert.Empty(t, snap.Cookies)
	assert.Empty(t, snap.KeyValueStore)
}

func TestClientSnapshotService_CaptureLocal_Cancelled(t *testing.T) {
	h, _, svc := newSnapshotFixture(t)
	h.EXPECT().ActiveDocument(gomock.Any()).Return(nil, nil).AnyTimes()
	h.EXPECT().CookiesByDomain(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CaptureLocal(ctx, "example.com")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientSnapshotService_ApplyRemote(t *testing.T) {
	h, _, svc := newSnapshotFixture(t)

	doc := &models.Document{ID: "example.com", URL: "https://Example.com/home"}
	h.EXPECT().ActiveDocument(gomock.Any()).Return(doc, nil)
	h.EXPECT().ApplyToDocument(gomock.Any(), *doc,
		[]string{"a=1; path=/", "b=2; path=/"},
		map[string]string{"k": "v"},
	).Return(nil)

	err := svc.ApplyRemote(context.Background(), "example.com", models.Snapshot{
		Cookies:       map[string]string{"b": "2", "a": "1"},
		KeyValueStore: map[string]string{"k": "v"},
	})
	require.NoError(t, err)
}

func TestClientSnapshotService_ApplyRemote_OtherDomainIsNoop(t *testing.T) {
	h, _, svc := newSnapshotFixture(t)
	h.EXPECT().ActiveDocument(gomock.Any()).Return(&models.Document{URL: "https://shop.example.com/"}, nil)

	err := svc.ApplyRemote(context.Background(), "example.com", models.Snapshot{Cookies: map[string]string{"a": "1"}})
	require.NoError(t, err)
}

func TestClientSnapshotService_ApplyRemote_HostError(t *testing.T) {
	h, _, svc := newSnapshotFixture(t)
	doc := &models.Document{URL: "https://example.com/"}
	h.EXPECT().ActiveDocument(gomock.Any()).Return(doc, nil)
	h.EXPECT().ApplyToDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

	err := svc.ApplyRemote(context.Background(), "example.com", models.NewSnapshot(testNow))
	assert.ErrorIs(t, err, ErrHostCollaborator)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestClientSnapshotService_ActiveDomain(t *testing.T) {
	h, _, svc := newSnapshotFixture(t)
	ctx := context.Background()

	h.EXPECT().ActiveDocument(gomock.Any()).Return(&models.Document{URL: "https://WWW.Example.com/x"}, nil)
	domain, err := svc.ActiveDomain(ctx)
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", domain)

	h.EXPECT().ActiveDocument(gomock.Any()).Return(nil, nil)
	domain, err = svc.ActiveDomain(ctx)
	require.NoError(t, err)
	assert.Empty(t, domain)

	h.EXPECT().ActiveDocument(gomock.Any()).Return(nil, assert.AnError)
	_, err = svc.ActiveDomain(ctx)
	assert.ErrorIs(t, err, ErrHostCollaborator)
}
