// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/service"
	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreated = time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)

func TestUploadData(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantData string
	}{
		{name: "string payload", body: `{"data":"ps1.abc"}`, wantData: "ps1.abc"},
		{name: "inline object", body: `{"data":{"cookies":{"a":"1"}}}`, wantData: `{"cookies":{"a":"1"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t, testLimits)
			ts.data.uploadFn = func(_ context.Context, e models.DataEntry) (models.DataEntry, error) {
				assert.Equal(t, models.Pass("P"), e.Pass)
				assert.Equal(t, "example.com", e.Domain)
				assert.Equal(t, tt.wantData, e.Data)
				e.ID, e.Size, e.CreatedAt = 7, int64(len(e.Data)), testCreated
				return e, nil
			}

			rec := do(t, h.Init(), http.MethodPost, "/api/data/P?domain=example.com", strings.NewReader(tt.body),
				"Content-Type", "application/json")
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

			resp := decode[models.UploadDataResponse](t, rec)
			assert.True(t, resp.Success)
			assert.Equal(t, "data_7", resp.ID)
			assert.True(t, resp.Timestamp.Equal(testCreated))
		})
	}
}

func TestUploadData_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		svcErr     error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing domain",
			target:     "/api/data/P",
			body:       `{"data":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Missing domain parameter",
		},
		{
			name:       "empty body",
			target:     "/api/data/P?domain=example.com",
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Missing data field",
		},
		{
			name:       "no data field",
			target:     "/api/data/P?domain=example.com",
			body:       `{"other":1}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Missing data field",
		},
		{
			name:       "broken json",
			target:     "/api/data/P?domain=example.com",
			body:       `{"data":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "body over read limit",
			target:     "/api/data/P?domain=example.com",
			body:       `{"data":"` + strings.Repeat("x", 5000) + `"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Data too large. Max size: 64 bytes",
		},
		{
			name:       "payload over limit",
			target:     "/api/data/P?domain=example.com",
			body:       `{"data":"x"}`,
			svcErr:     service.ErrDataTooLarge,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Data too large. Max size: 64 bytes",
		},
		{
			name:       "unknown pass",
			target:     "/api/data/P?domain=example.com",
			body:       `{"data":"x"}`,
			svcErr:     store.ErrPassNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Invalid pass ID",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t, testLimits)
			ts.data.uploadFn = func(context.Context, models.DataEntry) (models.DataEntry, error) {
				if tt.svcErr == nil {
					t.Fatal("upload must not reach the service")
				}
				return models.DataEntry{}, tt.svcErr
			}

			rec := do(t, h.Init(), http.MethodPost, tt.target, strings.NewReader(tt.body))
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decode[models.ErrorResponse](t, rec).Error)
			}
		})
	}
}

func TestGetData(t *testing.T) {
	h, ts := newTestHandler(t, testLimits)
	ts.data.latestFn = func(_ context.Context, pass models.Pass, domain string) (models.DataEntry, error) {
		assert.Equal(t, models.Pass("P"), pass)
		assert.Equal(t, "example.com", domain)
		return models.DataEntry{ID: 3, Data: "ps1.payload", CreatedAt: testCreated}, nil
	}

	rec := do(t, h.Init(), http.MethodGet, "/api/data/P?domain=example.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[models.DataResponse](t, rec)
	assert.Equal(t, "data_3", resp.ID)
	assert.Equal(t, "ps1.payload", resp.Payload())
	assert.True(t, resp.Timestamp.Equal(testCreated))
}

func TestGetData_NotFound(t *testing.T) {
	h, ts := newTestHandler(t, testLimits)
	ts.data.latestFn = func(context.Context, models.Pass, string) (models.DataEntry, error) {
		return models.DataEntry{}, store.ErrDataNotFound
	}

	rec := do(t, h.Init(), http.MethodGet, "/api/data/P?domain=example.com", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No data found", decode[models.ErrorResponse](t, rec).Error)
}

func TestListVersions(t *testing.T) {
	tests := []struct {
		query     string
		wantLimit int
	}{
		{"domain=example.com&limit=3", 3},
		{"domain=example.com", 0},
		{"domain=example.com&limit=abc", 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			h, ts := newTestHandler(t, testLimits)
			ts.data.listFn = func(_ context.Context, _ models.Pass, _ string, limit int) ([]models.DataEntry, error) {
				assert.Equal(t, tt.wantLimit, limit)
				return []models.DataEntry{
					{ID: 9, Size: 40, CreatedAt: testCreated},
					{ID: 8, Size: 20, CreatedAt: testCreated.Add(-time.Hour)},
				}, nil
			}

			rec := do(t, h.Init(), http.MethodGet, "/api/data/P/versions?"+tt.query, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			resp := decode[models.VersionsResponse](t, rec)
			require.Len(t, resp.Versions, 2)
			assert.Equal(t, "data_9", resp.Versions[0].ID)
			assert.Equal(t, 40, resp.Versions[0].Size)
			assert.Equal(t, "data_8", resp.Versions[1].ID)
		})
	}
}

func TestListVersions_EmptyIsArray(t *testing.T) {
	h, ts := newTestHandler(t, testLimits)
	ts.data.listFn = func(context.Context, models.Pass, string, int) ([]models.DataEntry, error) {
		return nil, nil
	}

	rec := do(t, h.Init(), http.MethodGet, "/api/data/P/versions?domain=example.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"versions":[]}`, rec.Body.String())
}

func TestGetVersion(t *testing.T) {
	h, ts := newTestHandler(t, testLimits)
	ts.data.versionFn = func(_ context.Context, _ models.Pass, domain, id string) (models.DataEntry, error) {
		assert.Equal(t, "example.com", domain)
		if id != "data_5" {
			return models.DataEntry{}, service.ErrInvalidVersionID
		}
		return models.DataEntry{ID: 5, Data: "old", CreatedAt: testCreated}, nil
	}
	router := h.Init()

	rec := do(t, router, http.MethodGet, "/api/data/P/version/data_5?domain=example.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "old", decode[models.DataResponse](t, rec).Payload())

	rec = do(t, router, http.MethodGet, "/api/data/P/version/garbage?domain=example.com", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteData(t *testing.T) {
	h, ts := newTestHandler(t, testLimits)
	ts.data.deleteFn = func(_ context.Context, _ models.Pass, domain, versionID string) (int64, error) {
		assert.Equal(t, "example.com", domain)
		if versionID == "" {
			return 4, nil
		}
		return 1, nil
	}
	router := h.Init()

	rec := do(t, router, http.MethodDelete, "/api/data/P?domain=example.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.DeleteDataResponse{Success: true, DeletedCount: 4}, decode[models.DeleteDataResponse](t, rec))

	rec = do(t, router, http.MethodDelete, "/api/data/P?domain=example.com&version_id=data_2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), decode[models.DeleteDataResponse](t, rec).DeletedCount)
}

func TestPassStats(t *testing.T) {
	h, ts := newTestHandler(t, testLimits)
	last := testCreated
	ts.data.passStatsFn = func(context.Context, models.Pass) (models.PassStats, error) {
		return models.PassStats{
			Pass:         "P",
			TotalSize:    300,
			LastActivity: &last,
			Domains: []models.DomainUsage{
				{Domain: "a.com", VersionCount: 2, Size: 100, LastModified: last},
				{Domain: "b.com", VersionCount: 1, Size: 200, LastModified: last},
			},
		}, nil
	}

	rec := do(t, h.Init(), http.MethodGet, "/api/stats/P", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[models.PassStatsResponse](t, rec)
	assert.Equal(t, 2, resp.DomainCount)
	assert.Equal(t, int64(300), resp.TotalSize)
	require.NotNil(t, resp.LastActivity)
	assert.Equal(t, "b.com", resp.Domains[1].Domain)
}

func TestPassStats_UnknownPass(t *testing.T) {
	h, ts := newTestHandler(t, testLimits)
	ts.data.passStatsFn = func(context.Context, models.Pass) (models.PassStats, error) {
		return models.PassStats{}, store.ErrPassNotFound
	}

	rec := do(t, h.Init(), http.MethodGet, "/api/stats/nobody", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServerStats(t *testing.T) {
	h, ts := newTestHandler(t, testLimits)
	ts.data.serverStatsFn = func(context.Context) (models.ServerStats, error) {
		return models.ServerStats{TotalPasses: 3, TotalDomains: 5, TotalSize: 1024, MaxDataSize: 64, MaxVersions: 10}, nil
	}

	rec := do(t, h.Init(), http.MethodGet, "/api/stats/server", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ServerStatsResponse{
		TotalPasses: 3, TotalDomains: 5, TotalSizeBytes: 1024, MaxDataSize: 64, MaxVersionsPerDomain: 10,
	}, decode[models.ServerStatsResponse](t, rec))
}
