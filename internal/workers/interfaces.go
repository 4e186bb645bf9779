// Package workers runs the background jobs of the server on a
// robfig/cron scheduler.
// It defines the Worker interface and a Workers aggregate that schedules
// every registered worker at its own interval.
package workers

import (
	"context"
	"time"
)

// Worker is a periodic background job. Run must return once ctx is done.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Name() string             { return "my-worker" }
//	func (w *MyWorker) Interval() time.Duration  { return time.Minute }
//	func (w *MyWorker) Run(ctx context.Context)  { /* one pass */ }
type Worker interface {
	Name() string
	Interval() time.Duration
	Run(ctx context.Context)
}

// Pruner trims stored versions down to the configured limit.
type Pruner interface {
	Prune(ctx context.Context) (int64, error)
}
