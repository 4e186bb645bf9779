package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/mock"
	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestEngine(t *testing.T) (*Engine, *mock.MockServerAdapter, *mock.MockHost) {
	t.Helper()
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	h := mock.NewMockHost(ctrl)

	services := NewClientServices(store.NewMemoryStateStore(), srv, h, crypto.NewAEADCodec(testArgon), testArgon, logger.Nop())
	return NewEngine(services, logger.Nop()), srv, h
}

func TestEngine_NotInitialized(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	assert.False(t, e.IsInitialized())

	_, err := e.SaveServerConfig(ctx, models.ServerConfigPatch{})
	assert.ErrorIs(t, err, ErrEngineNotInitialized)
	_, err = e.SaveDomainConfig(ctx, "example.com", true, true)
	assert.ErrorIs(t, err, ErrEngineNotInitialized)
	_, err = e.VersionHistory(ctx, "example.com", 0)
	assert.ErrorIs(t, err, ErrEngineNotInitialized)
	assert.ErrorIs(t, e.StartAutoSync(ctx), ErrEngineNotInitialized)

	for _, res := range []models.SyncResult{
		e.SyncDomain(ctx, "example.com"),
		e.ForceUpload(ctx, "example.com"),
		e.ForceDownload(ctx, "example.com"),
		e.PerformAutoSync(ctx),
	} {
		assert.False(t, res.Success)
		assert.ErrorIs(t, res.Err, ErrEngineNotInitialized)
	}
}

func TestEngine_Init(t *testing.T) {
	e, _, _ := newTestEngine(t)
	require.NoError(t, e.Init(context.Background()))
	assert.True(t, e.IsInitialized())

	cfg, err := e.ServerConfig()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultServerConfig(), cfg)
}

func TestEngine_SaveServerConfig_EnsuresPass(t *testing.T) {
	e, srv, _ := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, e.Init(ctx))

	srv.EXPECT().CreatePass(gomock.Any(), testServerURL).Return(models.Pass("minted"), nil)

	cfg, err := e.SaveServerConfig(ctx, models.ServerConfigPatch{ServerURL: ptr(testServerURL)})
	require.NoError(t, err)
	assert.Equal(t, models.Pass("minted"), cfg.Pass)
}

func TestEngine_SaveServerConfig_NoServerNoPass(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, e.Init(ctx))

	// без адреса сервера pass не создаётся, сервер не вызывается
	cfg, err := e.SaveServerConfig(ctx, models.ServerConfigPatch{MaxVersions: ptr(7)})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MaxVersions)
	assert.True(t, cfg.Pass.IsZero())
}

func TestEngine_SaveServerConfig_RestartsJobOnIntervalChange(t *testing.T) {
	e, _, h := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, e.Init(ctx))
	h.EXPECT().ActiveDocument(gomock.Any()).Return(nil, nil).AnyTimes()

	require.NoError(t, e.StartAutoSync(ctx))
	assert.True(t, e.AutoSyncRunning())

	_, err := e.SaveServerConfig(ctx, models.ServerConfigPatch{SyncIntervalMinutes: ptr(1)})
	require.NoError(t, err)
	assert.True(t, e.AutoSyncRunning())

	e.StopAutoSync()
	assert.False(t, e.AutoSyncRunning())
}

func TestEngine_SaveDomainConfig(t *testing.T) {
	e, srv, _ := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, e.Init(ctx))

	srv.EXPECT().CreatePass(gomock.Any(), testServerURL).Return(models.Pass("P"), nil)
	_, err := e.SaveServerConfig(ctx, models.ServerConfigPatch{ServerURL: ptr(testServerURL)})
	require.NoError(t, err)

	// ошибка проверки pass не мешает сохранить домен
	srv.EXPECT().CheckPass(gomock.Any(), testServerURL, models.Pass("P")).
		Return(models.CheckPassResponse{}, assert.AnError)

	cfg, err := e.SaveDomainConfig(ctx, "Example.com", true, false)
	require.NoError(t, err)
	assert.True(t, cfg.CookieSyncEnabled)

	got, err := e.DomainConfig("example.com")
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	domains, err := e.Domains()
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com"}, domains)
}

func TestEngine_SaveDomainConfig_KeepsLastSync(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, e.Init(ctx))

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, e.services.ConfigService.UpdateDomainConfig(ctx, "example.com", models.DomainConfig{
		CookieSyncEnabled: true, LastSyncTime: &at, LastSyncSource: models.SourceLocal,
	}))

	cfg, err := e.SaveDomainConfig(ctx, "example.com", false, true)
	require.NoError(t, err)
	require.NotNil(t, cfg.LastSyncTime)
	assert.True(t, cfg.LastSyncTime.Equal(at))
	assert.False(t, cfg.CookieSyncEnabled)
	assert.True(t, cfg.StorageSyncEnabled)
}

// spyJob записывает вызовы Reset вместо запуска тикера.
type spyJob struct {
	running bool
	resets  []time.Duration
}

func (j *spyJob) Start(context.Context, time.Duration) { j.running = true }
func (j *spyJob) Reset(d time.Duration)                { j.resets = append(j.resets, d) }
func (j *spyJob) Stop()                                { j.running = false }
func (j *spyJob) Running() bool                        { return j.running }

func TestEngine_PerformAutoSync_ReloadsSharedState(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStateStore()
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	h := mock.NewMockHost(ctrl)

	// демон и CLI: два движка над одним хранилищем
	job := &spyJob{}
	daemonServices := NewClientServices(st, srv, h, crypto.NewAEADCodec(testArgon), testArgon, logger.Nop())
	daemonServices.SyncJob = job
	daemon := NewEngine(daemonServices, logger.Nop())
	require.NoError(t, daemon.Init(ctx))
	require.NoError(t, daemon.StartAutoSync(ctx))

	cli := NewEngine(NewClientServices(st, srv, h, crypto.NewAEADCodec(testArgon), testArgon, logger.Nop()), logger.Nop())
	require.NoError(t, cli.Init(ctx))

	_, err := cli.SaveDomainConfig(ctx, "a.com", true, false)
	require.NoError(t, err)
	_, err = cli.SaveServerConfig(ctx, models.ServerConfigPatch{SyncIntervalMinutes: ptr(1)})
	require.NoError(t, err)

	h.EXPECT().ActiveDocument(gomock.Any()).Return(&models.Document{URL: "https://a.com/"}, nil)

	res := daemon.PerformAutoSync(ctx)
	assert.True(t, res.Skipped)
	assert.Equal(t, models.ReasonNoServerConfigured, res.Reason, "domain enabled by the other process is seen")
	assert.Equal(t, []time.Duration{time.Minute}, job.resets)

	domains, err := daemon.Domains()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.com"}, domains)
}

func TestNewEngine_CreatesSyncJob(t *testing.T) {
	e, _, _ := newTestEngine(t)
	require.NotNil(t, e.services.SyncJob)
	assert.False(t, e.AutoSyncRunning())
}
