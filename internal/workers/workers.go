package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/robfig/cron/v3"
)

// Workers schedules the registered workers on a shared cron instance.
type Workers struct {
	workers []Worker

	cron *cron.Cron
	ctx  context.Context
	stop context.CancelFunc

	mu      sync.Mutex
	started bool

	logger *logger.Logger
}

// NewWorkers builds the server workers.
func NewWorkers(pruner Pruner, cfg config.Workers, logger *logger.Logger) *Workers {
	return newWorkers(logger, NewPruneWorker(pruner, cfg.PruneInterval, logger))
}

func newWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	cronLog := cronLogger{logger: logger}
	ctx, cancel := context.WithCancel(context.Background())

	return &Workers{
		workers: workers,
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLog),
			cron.SkipIfStillRunning(cronLog),
		)),
		ctx:    ctx,
		stop:   cancel,
		logger: logger,
	}
}

// Run schedules every worker and starts the scheduler. It does not block.
func (w *Workers) Run() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return nil
	}

	for _, worker := range w.workers {
		job := cron.FuncJob(func() { worker.Run(w.ctx) })
		id, err := w.cron.AddJob(fmt.Sprintf("@every %s", worker.Interval()), job)
		if err != nil {
			return fmt.Errorf("failed to schedule worker %q: %w", worker.Name(), err)
		}
		w.logger.Info().
			Str("worker", worker.Name()).
			Dur("interval", worker.Interval()).
			Int("entry_id", int(id)).
			Msg("worker scheduled")
	}

	w.cron.Start()
	w.started = true
	return nil
}

// Stop cancels running jobs and waits for them to return or for ctx to end.
func (w *Workers) Stop(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stop()
	if !w.started {
		return
	}

	select {
	case <-w.cron.Stop().Done():
	case <-ctx.Done():
		w.logger.Warn().Msg("workers did not stop in time")
	}
	w.started = false
}

// cronLogger routes scheduler messages into zerolog.
type cronLogger struct {
	logger *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
