package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/models"
)

type clientSyncJob struct {
	syncer autoSyncer

	// runMu serializes Start and Stop so a replace is atomic.
	runMu sync.Mutex

	mu     sync.Mutex
	cancel context.CancelFunc
	reset  chan time.Duration
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob that calls PerformAutoSync on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(syncer autoSyncer, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncer: syncer, logger: logger}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that calls PerformAutoSync every interval.
// If interval is zero or negative it defaults to 5 minutes. Runs never
// overlap: a tick that arrives while a run is in progress is dropped by the
// ticker. The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	interval = jobInterval(interval)

	j.runMu.Lock()
	defer j.runMu.Unlock()

	j.stop()

	jobCtx, cancel := context.WithCancel(ctx)
	reset := make(chan time.Duration, 1)

	j.mu.Lock()
	j.cancel = cancel
	j.reset = reset
	j.mu.Unlock()

	j.wg.Add(1)
	j.logger.Info().Dur("interval", interval).Msg("auto sync started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case d := <-reset:
				t.Reset(d)
				j.logger.Info().Dur("interval", d).Msg("auto sync interval changed")
			case <-t.C:
				result := j.syncer.PerformAutoSync(jobCtx)
				if !result.Success && !result.Skipped {
					j.logger.Warn().Str("domain", result.Domain).Str("error", result.Error).Msg("scheduled sync failed")
				}
			}
		}
	}()
}

// Reset implements ClientSyncJob. It changes the interval of the running job
// without restarting it and may be called from inside a run.
func (j *clientSyncJob) Reset(interval time.Duration) {
	interval = jobInterval(interval)

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.reset == nil {
		return
	}
	// only the latest interval matters
	select {
	case <-j.reset:
	default:
	}
	j.reset <- interval
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.runMu.Lock()
	defer j.runMu.Unlock()
	j.stop()
}

func (j *clientSyncJob) stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.reset = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientSyncJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.cancel != nil
}

func jobInterval(d time.Duration) time.Duration {
	if d <= 0 {
		return models.DefaultSyncIntervalMinutes * time.Minute
	}
	return d
}
