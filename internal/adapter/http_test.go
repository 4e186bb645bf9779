// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPass = models.Pass("P4ssTok3n")

// newTestAdapter создаёт адаптер с коротким таймаутом
func newTestAdapter(t *testing.T) ServerAdapter {
	t.Helper()
	return NewHTTPServerAdapter(config.ClientAdapter{RequestTimeout: 2 * time.Second}, logger.Nop())
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Health ──────────────────────────────────────────────────────────────────

func TestHealth_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/health", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"status": "ok", "timestamp": "2026-01-02T03:04:05Z", "version": "1.2.0",
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t).Health(context.Background(), srv.URL+"/")

	require.NoError(t, err)
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, "1.2.0", got.Version)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), got.Timestamp.Time)
}

func TestHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := newTestAdapter(t).Health(context.Background(), addr)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.NotErrorIs(t, err, ErrRejected)
}

func TestHealth_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	a := NewHTTPServerAdapter(config.ClientAdapter{RequestTimeout: 50 * time.Millisecond}, logger.Nop())
	_, err := a.Health(context.Background(), srv.URL)

	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestHealth_InvalidURL(t *testing.T) {
	a := newTestAdapter(t)

	for _, raw := range []string{"", "   ", "ftp://example.com", "http://"} {
		_, err := a.Health(context.Background(), raw)
		assert.ErrorIs(t, err, ErrInvalidServerURL, "url %q", raw)
	}
}

// ── CreatePass ──────────────────────────────────────────────────────────────

func TestCreatePass_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/pass/create", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{}`, string(body))

		writeJSON(t, w, http.StatusCreated, map[string]any{"pass": "newpass", "created_at": "2026-01-01T00:00:00Z"})
	}))
	defer srv.Close()

	pass, err := newTestAdapter(t).CreatePass(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, models.Pass("newpass"), pass)
}

func TestCreatePass_LegacyPassIDField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"pass_id": "legacy", "created_at": "2026-01-01 10:00:00"})
	}))
	defer srv.Close()

	pass, err := newTestAdapter(t).CreatePass(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, models.Pass("legacy"), pass)
}

func TestCreatePass_EmptyPass(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusCreated, map[string]any{"pass": ""})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t).CreatePass(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestCreatePass_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, models.ErrorResponse{Error: "database is down"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t).CreatePass(context.Background(), srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)
	assert.ErrorIs(t, err, ErrInternalServerError)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "database is down", httpErr.Message)
}

// ── CheckPass ───────────────────────────────────────────────────────────────

func TestCheckPass_Exists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/pass/"+testPass.String()+"/check", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"exists": true, "domains": []string{"a.com"}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t).CheckPass(context.Background(), srv.URL, testPass)

	require.NoError(t, err)
	assert.True(t, got.Exists)
	assert.Equal(t, []string{"a.com"}, got.Domains)
}

func TestCheckPass_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "pass not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t).CheckPass(context.Background(), srv.URL, testPass)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

// ── FetchData ───────────────────────────────────────────────────────────────

func TestFetchData_StringPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/data/"+testPass.String(), r.URL.Path)
		assert.Equal(t, "example.com", r.URL.Query().Get("domain"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id": "data_7", "data": "ps1.abc", "timestamp": "2026-03-01 12:00:00",
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t).FetchData(context.Background(), srv.URL, testPass, "example.com")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "data_7", got.ID)
	assert.Equal(t, "ps1.abc", got.Payload)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), got.Timestamp)
}

func TestFetchData_ObjectPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"data":      map[string]any{"cookies": map[string]string{"a": "1"}},
			"timestamp": "2026-03-01T12:00:00Z",
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t).FetchData(context.Background(), srv.URL, testPass, "example.com")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.JSONEq(t, `{"cookies":{"a":"1"}}`, got.Payload)
}

// 404, данных нет, это не ошибка
func TestFetchData_NotFoundIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "no data"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t).FetchData(context.Background(), srv.URL, testPass, "example.com")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFetchData_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream failed"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t).FetchData(context.Background(), srv.URL, testPass, "example.com")

	assert.ErrorIs(t, err, ErrBadGateway)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "upstream failed", httpErr.Message)
}

func TestFetchData_PassIsPathEscaped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/data/a%2Fb", r.URL.EscapedPath())
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "no data"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t).FetchData(context.Background(), srv.URL, "a/b", "example.com")
	require.NoError(t, err)
}

// ── UploadData ──────────────────────────────────────────────────────────────

func TestUploadData_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/data/"+testPass.String(), r.URL.Path)
		assert.Equal(t, "example.com", r.URL.Query().Get("domain"))

		var body models.UploadDataRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "payload-text", body.Data)

		writeJSON(t, w, http.StatusCreated, map[string]any{
			"success": true, "id": "data_1", "timestamp": "2026-01-01T00:00:00Z",
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t).UploadData(context.Background(), srv.URL, testPass, "example.com", "payload-text")

	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, "data_1", got.ID)
}

func TestUploadData_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "data too large"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t).UploadData(context.Background(), srv.URL, testPass, "example.com", "x")

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "data too large")
}

// ── Versions ────────────────────────────────────────────────────────────────

func TestListVersions_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/data/"+testPass.String()+"/versions", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		writeJSON(t, w, http.StatusOK, map[string]any{"versions": []map[string]any{
			{"id": "data_3", "timestamp": "2026-01-03T00:00:00Z", "size": 30},
			{"id": "data_2", "timestamp": "2026-01-02T00:00:00Z", "size": 20},
		}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t).ListVersions(context.Background(), srv.URL, testPass, "example.com", 3)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "data_3", got[0].ID)
	assert.Equal(t, 20, got[1].Size)
}

func TestListVersions_NoLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("limit"))
		writeJSON(t, w, http.StatusOK, map[string]any{"versions": []any{}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t).ListVersions(context.Background(), srv.URL, testPass, "example.com", 0)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFetchVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/data/"+testPass.String()+"/version/data_2", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"id": "data_2", "data": "old", "timestamp": "2026-01-02T00:00:00Z"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t).FetchVersion(context.Background(), srv.URL, testPass, "example.com", "data_2")

	require.NoError(t, err)
	assert.Equal(t, "old", got.Payload)
}

func TestFetchVersion_NotFoundIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "version not found"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t).FetchVersion(context.Background(), srv.URL, testPass, "example.com", "data_9")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── DeleteData ──────────────────────────────────────────────────────────────

func TestDeleteData_WithVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "data_4", r.URL.Query().Get("version_id"))
		writeJSON(t, w, http.StatusOK, map[string]any{"success": true, "deleted_count": 1})
	}))
	defer srv.Close()

	n, err := newTestAdapter(t).DeleteData(context.Background(), srv.URL, testPass, "example.com", "data_4")

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestDeleteData_All(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("version_id"))
		writeJSON(t, w, http.StatusOK, map[string]any{"success": true, "deleted_count": 5})
	}))
	defer srv.Close()

	n, err := newTestAdapter(t).DeleteData(context.Background(), srv.URL, testPass, "example.com", "")

	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

// ── Stats ───────────────────────────────────────────────────────────────────

func TestStats_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stats/"+testPass.String(), r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"pass": testPass, "domain_count": 2, "total_size": 1024,
			"domains": []map[string]any{{"domain": "a.com", "version_count": 3, "size": 512, "last_modified": "2026-01-01T00:00:00Z"}},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t).Stats(context.Background(), srv.URL, testPass)

	require.NoError(t, err)
	assert.Equal(t, 2, got.DomainCount)
	assert.Equal(t, int64(1024), got.TotalSize)
	require.Len(t, got.Domains, 1)
	assert.Equal(t, 3, got.Domains[0].VersionCount)
}

func TestStats_TooManyRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t).Stats(context.Background(), srv.URL, testPass)

	assert.ErrorIs(t, err, ErrTooManyRequests)
	assert.Contains(t, err.Error(), "Too Many Requests")
}

// ── QuickAccessURL ──────────────────────────────────────────────────────────

func TestQuickAccessURL(t *testing.T) {
	a := newTestAdapter(t)

	link, err := a.QuickAccessURL("https://sync.example.org/", testPass, "example.com", "k&y")
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "sync.example.org", u.Host)
	assert.Equal(t, "/api/quick/"+testPass.String(), u.Path)
	assert.Equal(t, "example.com", u.Query().Get("domain"))
	assert.Equal(t, "k&y", u.Query().Get("key"))
}

func TestQuickAccessURL_NoKey(t *testing.T) {
	link, err := newTestAdapter(t).QuickAccessURL("sync.example.org", testPass, "example.com", "")

	require.NoError(t, err)
	assert.Equal(t, "http://sync.example.org/api/quick/"+testPass.String()+"?domain=example.com", link)
}

func TestQuickAccessURL_Errors(t *testing.T) {
	a := newTestAdapter(t)

	_, err := a.QuickAccessURL("", testPass, "example.com", "")
	assert.ErrorIs(t, err, ErrInvalidServerURL)

	_, err = a.QuickAccessURL("http://x", "", "example.com", "")
	assert.Error(t, err)
}

// ── HTTPError ───────────────────────────────────────────────────────────────

func TestHTTPError_Is(t *testing.T) {
	err := &HTTPError{Status: http.StatusConflict, Message: "dup"}

	assert.ErrorIs(t, err, ErrRejected)
	assert.ErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "http 409: dup", err.Error())

	unknown := &HTTPError{Status: 418}
	assert.ErrorIs(t, unknown, ErrRejected)
	assert.Equal(t, "http 418: I'm a teapot", unknown.Error())
	assert.Equal(t, 0, StatusCode(ErrUnreachable))
}
