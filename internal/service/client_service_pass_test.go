package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/mock"
	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testServerURL = "http://sync.test"

func newConfigWithServer(t *testing.T, pass models.Pass) ClientConfigService {
	t.Helper()
	cfg := NewClientConfigService(store.NewMemoryStateStore(), logger.Nop())
	patch := models.ServerConfigPatch{ServerURL: ptr(testServerURL)}
	if pass != "" {
		patch.Pass = &pass
	}
	_, err := cfg.UpdateServerConfig(context.Background(), patch)
	require.NoError(t, err)
	return cfg
}

func TestClientPassService_CreatePass(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	cfg := newConfigWithServer(t, "")

	srv.EXPECT().CreatePass(gomock.Any(), testServerURL).Return(models.Pass("fresh"), nil)

	svc := NewClientPassService(cfg, srv, logger.Nop())
	pass, err := svc.CreatePass(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Pass("fresh"), pass)
	assert.Equal(t, models.Pass("fresh"), cfg.GetServerConfig().Pass)
}

func TestClientPassService_CreatePass_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unreachable", fmt.Errorf("%w: dial tcp", adapter.ErrUnreachable), ErrServerUnreachable},
		{"rejected", &adapter.HTTPError{Status: http.StatusInternalServerError}, ErrServerRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv := mock.NewMockServerAdapter(ctrl)
			cfg := newConfigWithServer(t, "")
			srv.EXPECT().CreatePass(gomock.Any(), testServerURL).Return(models.Pass(""), tt.err)

			_, err := NewClientPassService(cfg, srv, logger.Nop()).CreatePass(context.Background())
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, cfg.GetServerConfig().Pass.IsZero())
		})
	}
}

func TestClientPassService_NoServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	cfg := NewClientConfigService(store.NewMemoryStateStore(), logger.Nop())
	svc := NewClientPassService(cfg, srv, logger.Nop())

	_, err := svc.CreatePass(context.Background())
	assert.ErrorIs(t, err, ErrNoServerConfigured)
	_, err = svc.EnsurePass(context.Background())
	assert.ErrorIs(t, err, ErrNoServerConfigured)
	_, err = svc.ValidatePass(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNoServerConfigured)
}

func TestClientPassService_ValidatePass(t *testing.T) {
	tests := []struct {
		name    string
		resp    models.CheckPassResponse
		err     error
		want    bool
		wantErr error
	}{
		{name: "exists", resp: models.CheckPassResponse{Exists: true}, want: true},
		{name: "exists false", resp: models.CheckPassResponse{Exists: false}, want: false},
		{name: "404", err: &adapter.HTTPError{Status: http.StatusNotFound}, want: false},
		{name: "500 is not rotation", err: &adapter.HTTPError{Status: http.StatusInternalServerError}, wantErr: ErrServerRejected},
		{name: "unreachable", err: adapter.ErrUnreachable, wantErr: ErrServerUnreachable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv := mock.NewMockServerAdapter(ctrl)
			srv.EXPECT().CheckPass(gomock.Any(), testServerURL, models.Pass("p1")).Return(tt.resp, tt.err)

			svc := NewClientPassService(newConfigWithServer(t, "p1"), srv, logger.Nop())
			got, err := svc.ValidatePass(context.Background(), "p1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientPassService_EnsurePass_KeepsValid(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	srv.EXPECT().CheckPass(gomock.Any(), testServerURL, models.Pass("known")).Return(models.CheckPassResponse{Exists: true}, nil)

	pass, err := NewClientPassService(newConfigWithServer(t, "known"), srv, logger.Nop()).EnsurePass(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Pass("known"), pass)
}

func TestClientPassService_EnsurePass_RotatesUnknownPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	cfg := newConfigWithServer(t, "P1")

	// сервер забыл P1, должен появиться новый P2
	gomock.InOrder(
		srv.EXPECT().CheckPass(gomock.Any(), testServerURL, models.Pass("P1")).Return(models.CheckPassResponse{Exists: false}, nil),
		srv.EXPECT().CreatePass(gomock.Any(), testServerURL).Return(models.Pass("P2"), nil),
	)

	pass, err := NewClientPassService(cfg, srv, logger.Nop()).EnsurePass(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Pass("P2"), pass)
	assert.Equal(t, models.Pass("P2"), cfg.GetServerConfig().Pass)
}

func TestClientPassService_EnsurePass_ServerErrorKeepsPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	cfg := newConfigWithServer(t, "P1")
	srv.EXPECT().CheckPass(gomock.Any(), testServerURL, models.Pass("P1")).
		Return(models.CheckPassResponse{}, &adapter.HTTPError{Status: http.StatusBadGateway})

	_, err := NewClientPassService(cfg, srv, logger.Nop()).EnsurePass(context.Background())
	assert.ErrorIs(t, err, ErrServerRejected)
	assert.Equal(t, models.Pass("P1"), cfg.GetServerConfig().Pass)
}

func TestClientPassService_EnsurePass_ConcurrentMintsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	cfg := newConfigWithServer(t, "")

	var created atomic.Int64
	srv.EXPECT().CreatePass(gomock.Any(), testServerURL).DoAndReturn(func(context.Context, string) (models.Pass, error) {
		created.Add(1)
		return models.Pass("only"), nil
	}).Times(1)
	srv.EXPECT().CheckPass(gomock.Any(), testServerURL, models.Pass("only")).
		Return(models.CheckPassResponse{Exists: true}, nil).AnyTimes()

	svc := NewClientPassService(cfg, srv, logger.Nop())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pass, err := svc.EnsurePass(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, models.Pass("only"), pass)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), created.Load())
}
