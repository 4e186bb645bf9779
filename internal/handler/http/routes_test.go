package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t, testLimits)

	rec := do(t, h.Init(), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[models.HealthResponse](t, rec)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, ">= 1.0.0, < 2.0.0", resp.Clients)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestRoutes_NotFoundAndMethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t, testLimits)
	router := h.Init()

	rec := do(t, router, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", decode[models.ErrorResponse](t, rec).Error)

	rec = do(t, router, http.MethodPut, "/health", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method not allowed", decode[models.ErrorResponse](t, rec).Error)
}

func TestRoutes_TraceID(t *testing.T) {
	h, _ := newTestHandler(t, testLimits)
	router := h.Init()

	rec := do(t, router, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	rec = do(t, router, http.MethodGet, "/health", nil, traceIDHeader, "trace-42")
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))

	// слишком длинный идентификатор заменяется новым
	long := strings.Repeat("x", maxTraceIDLength+1)
	rec = do(t, router, http.MethodGet, "/health", nil, traceIDHeader, long)
	assert.NotEqual(t, long, rec.Header().Get(traceIDHeader))
}

func TestRoutes_CORSPreflight(t *testing.T) {
	h, _ := newTestHandler(t, testLimits)

	rec := do(t, h.Init(), http.MethodOptions, "/api/data/P", nil,
		"Origin", "chrome-extension://abc",
		"Access-Control-Request-Method", http.MethodPost,
	)
	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_Metrics(t *testing.T) {
	h, ts := newTestHandler(t, testLimits)
	ts.data.serverStatsFn = func(context.Context) (models.ServerStats, error) {
		return models.ServerStats{}, nil
	}
	router := h.Init()

	do(t, router, http.MethodGet, "/health", nil)
	do(t, router, http.MethodGet, "/api/stats/server", nil)

	rec := do(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `pass_sync_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, string(body), `pass_sync_http_requests_total{method="GET",route="/api/stats/server",status="200"} 1`)
}
