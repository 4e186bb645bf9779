package host

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProfile = `{
  "activeUrl": "https://www.shop.example.com/cart",
  "cookies": [
    {"name": "sid", "value": "1", "domain": ".example.com", "path": "/"},
    {"name": "cart", "value": "2", "domain": "www.shop.example.com", "path": "/cart"},
    {"name": "admin", "value": "3", "domain": "www.shop.example.com", "path": "/admin"},
    {"name": "other", "value": "4", "domain": "other.org", "path": "/"}
  ],
  "localStorage": {
    "www.shop.example.com": {"theme": "dark"}
  }
}`

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func cookieNames(cookies []models.Cookie) []string {
	names := make([]string, 0, len(cookies))
	for _, c := range cookies {
		names = append(names, c.Name)
	}
	return names
}

func TestNewProfileHost_MissingFileIsEmpty(t *testing.T) {
	h, err := NewProfileHost(filepath.Join(t.TempDir(), "none.json"), logger.Nop())
	require.NoError(t, err)

	doc, err := h.ActiveDocument(context.Background())
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestNewProfileHost_InvalidJSON(t *testing.T) {
	_, err := NewProfileHost(writeProfile(t, "{broken"), logger.Nop())
	assert.Error(t, err)
}

func TestProfileHost_ActiveDocument(t *testing.T) {
	h, err := NewProfileHost(writeProfile(t, sampleProfile), logger.Nop())
	require.NoError(t, err)

	doc, err := h.ActiveDocument(context.Background())
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "www.shop.example.com", doc.ID)
	assert.Equal(t, "www.shop.example.com", doc.Domain())
}

func TestProfileHost_CookiesByURL(t *testing.T) {
	h, err := NewProfileHost(writeProfile(t, sampleProfile), logger.Nop())
	require.NoError(t, err)

	cookies, err := h.CookiesByURL(context.Background(), "https://www.shop.example.com/cart/items")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sid", "cart"}, cookieNames(cookies))

	_, err = h.CookiesByURL(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestProfileHost_CookiesByDomain(t *testing.T) {
	h, err := NewProfileHost(writeProfile(t, sampleProfile), logger.Nop())
	require.NoError(t, err)

	cookies, err := h.CookiesByDomain(context.Background(), "example.com")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sid", "cart", "admin"}, cookieNames(cookies))

	cookies, err = h.CookiesByDomain(context.Background(), "www.shop.example.com")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cart", "admin"}, cookieNames(cookies))
}

func TestProfileHost_ReadKeyValueStoreReturnsCopy(t *testing.T) {
	h, err := NewProfileHost(writeProfile(t, sampleProfile), logger.Nop())
	require.NoError(t, err)
	doc := models.Document{ID: "www.shop.example.com"}

	kv, err := h.ReadKeyValueStore(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"theme": "dark"}, kv)

	kv["theme"] = "light"
	again, _ := h.ReadKeyValueStore(context.Background(), doc)
	assert.Equal(t, "dark", again["theme"])

	empty, err := h.ReadKeyValueStore(context.Background(), models.Document{ID: "unknown.org"})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProfileHost_ApplyToDocumentPersists(t *testing.T) {
	path := writeProfile(t, sampleProfile)
	h, err := NewProfileHost(path, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()
	doc := models.Document{ID: "www.shop.example.com", URL: "https://www.shop.example.com/"}

	err = h.ApplyToDocument(ctx, doc,
		[]string{"cart=99; path=/cart", "fresh=yes; path=/"},
		map[string]string{"theme": "light", "lang": "ru"},
	)
	require.NoError(t, err)

	// читаем файл заново другим экземпляром
	reopened, err := NewProfileHost(path, logger.Nop())
	require.NoError(t, err)

	cookies, err := reopened.CookiesByDomain(ctx, "www.shop.example.com")
	require.NoError(t, err)
	values := map[string]string{}
	for _, c := range cookies {
		values[c.Name] = c.Value
	}
	assert.Equal(t, "99", values["cart"])
	assert.Equal(t, "yes", values["fresh"])

	kv, err := reopened.ReadKeyValueStore(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"theme": "light", "lang": "ru"}, kv)
}

func TestProfileHost_ApplyToDocumentRejectsBadLine(t *testing.T) {
	h, err := NewProfileHost(writeProfile(t, sampleProfile), logger.Nop())
	require.NoError(t, err)

	err = h.ApplyToDocument(context.Background(), models.Document{ID: "x.com"}, []string{"broken"}, nil)
	assert.Error(t, err)

	err = h.ApplyToDocument(context.Background(), models.Document{}, nil, map[string]string{"a": "b"})
	assert.ErrorIs(t, err, ErrNoActiveDocument)
}

func TestProfileHost_SetActiveURL(t *testing.T) {
	h, err := NewProfileHost(filepath.Join(t.TempDir(), "p.json"), logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, h.SetActiveURL(ctx, "https://example.com/"))
	doc, err := h.ActiveDocument(ctx)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "example.com", doc.ID)

	assert.Error(t, h.SetActiveURL(ctx, "::::"))

	require.NoError(t, h.SetActiveURL(ctx, ""))
	doc, err = h.ActiveDocument(ctx)
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestProfileHost_WatchReloadsExternalEdits(t *testing.T) {
	path := writeProfile(t, sampleProfile)
	h, err := NewProfileHost(path, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var changes atomic.Int32
	done := make(chan error, 1)
	go func() { done <- h.Watch(ctx, func() { changes.Add(1) }) }()

	// даём watcher'у подписаться
	time.Sleep(100 * time.Millisecond)

	// own writes do not count
	require.NoError(t, h.SetActiveURL(ctx, "https://www.shop.example.com/"))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), changes.Load())

	require.NoError(t, os.WriteFile(path, []byte(`{"activeUrl": "https://other.org/"}`), 0o600))

	require.Eventually(t, func() bool {
		doc, err := h.ActiveDocument(context.Background())
		return err == nil && doc != nil && doc.ID == "other.org"
	}, 3*time.Second, 20*time.Millisecond)
	assert.Positive(t, changes.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}
