package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/service"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

type mockPassSvc struct {
	createFn func(ctx context.Context) (models.StoredPass, error)
	checkFn  func(ctx context.Context, pass models.Pass) (models.PassInfo, error)
}

func (m *mockPassSvc) CreatePass(ctx context.Context) (models.StoredPass, error) {
	return m.createFn(ctx)
}

func (m *mockPassSvc) CheckPass(ctx context.Context, pass models.Pass) (models.PassInfo, error) {
	return m.checkFn(ctx, pass)
}

type mockDataSvc struct {
	uploadFn      func(ctx context.Context, entry models.DataEntry) (models.DataEntry, error)
	latestFn      func(ctx context.Context, pass models.Pass, domain string) (models.DataEntry, error)
	listFn        func(ctx context.Context, pass models.Pass, domain string, limit int) ([]models.DataEntry, error)
	versionFn     func(ctx context.Context, pass models.Pass, domain, versionID string) (models.DataEntry, error)
	deleteFn      func(ctx context.Context, pass models.Pass, domain, versionID string) (int64, error)
	passStatsFn   func(ctx context.Context, pass models.Pass) (models.PassStats, error)
	serverStatsFn func(ctx context.Context) (models.ServerStats, error)
	quickFn       func(ctx context.Context, pass models.Pass, domain, key string) (models.QuickAccess, error)
}

func (m *mockDataSvc) Upload(ctx context.Context, entry models.DataEntry) (models.DataEntry, error) {
	return m.uploadFn(ctx, entry)
}

func (m *mockDataSvc) Latest(ctx context.Context, pass models.Pass, domain string) (models.DataEntry, error) {
	return m.latestFn(ctx, pass, domain)
}

func (m *mockDataSvc) ListVersions(ctx context.Context, pass models.Pass, domain string, limit int) ([]models.DataEntry, error) {
	return m.listFn(ctx, pass, domain, limit)
}

func (m *mockDataSvc) GetVersion(ctx context.Context, pass models.Pass, domain, versionID string) (models.DataEntry, error) {
	return m.versionFn(ctx, pass, domain, versionID)
}

func (m *mockDataSvc) Delete(ctx context.Context, pass models.Pass, domain, versionID string) (int64, error) {
	return m.deleteFn(ctx, pass, domain, versionID)
}

func (m *mockDataSvc) PassStats(ctx context.Context, pass models.Pass) (models.PassStats, error) {
	return m.passStatsFn(ctx, pass)
}

func (m *mockDataSvc) ServerStats(ctx context.Context) (models.ServerStats, error) {
	return m.serverStatsFn(ctx)
}

func (m *mockDataSvc) QuickAccess(ctx context.Context, pass models.Pass, domain, key string) (models.QuickAccess, error) {
	return m.quickFn(ctx, pass, domain, key)
}

func (m *mockDataSvc) Prune(context.Context) (int64, error) {
	return 0, nil
}

type mockAdminSvc struct {
	loginFn  func(ctx context.Context, ip, password string) (models.Token, error)
	parseFn  func(ctx context.Context, token string) (models.Token, error)
	listFn   func(ctx context.Context) ([]models.PassSummary, error)
	deleteFn func(ctx context.Context, pass models.Pass) (int64, error)
}

func (m *mockAdminSvc) Login(ctx context.Context, ip, password string) (models.Token, error) {
	return m.loginFn(ctx, ip, password)
}

func (m *mockAdminSvc) ParseToken(ctx context.Context, token string) (models.Token, error) {
	return m.parseFn(ctx, token)
}

func (m *mockAdminSvc) ListPasses(ctx context.Context) ([]models.PassSummary, error) {
	return m.listFn(ctx)
}

func (m *mockAdminSvc) DeletePass(ctx context.Context, pass models.Pass) (int64, error) {
	return m.deleteFn(ctx, pass)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testLimits = config.Limits{MaxDataSize: 64, MaxVersions: 10}

type testServices struct {
	pass  *mockPassSvc
	data  *mockDataSvc
	admin *mockAdminSvc
}

func newTestHandler(t *testing.T, limits config.Limits) (*Handler, *testServices) {
	t.Helper()
	ts := &testServices{pass: &mockPassSvc{}, data: &mockDataSvc{}, admin: &mockAdminSvc{}}
	appInfo, err := service.NewAppInfoService(config.App{Version: "1.2.3", SupportedClients: ">= 1.0.0, < 2.0.0"}, logger.Nop())
	require.NoError(t, err)
	h := NewHandler(&service.Services{
		PassService:    ts.pass,
		DataService:    ts.data,
		AdminService:   ts.admin,
		AppInfoService: appInfo,
	}, limits, logger.Nop())
	return h, ts
}

func do(t *testing.T, h http.Handler, method, target string, body io.Reader, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
