// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
)

const defaultPruneInterval = 10 * time.Minute

// PruneWorker trims every (pass, domain) to the version limit. Uploads prune
// their own domain already; this catches entries left over after a limit
// change or a failed inline prune.
type PruneWorker struct {
	pruner   Pruner
	interval time.Duration
	logger   *logger.Logger
}

func NewPruneWorker(pruner Pruner, interval time.Duration, logger *logger.Logger) *PruneWorker {
	if interval <= 0 {
		interval = defaultPruneInterval
	}
	return &PruneWorker{pruner: pruner, interval: interval, logger: logger}
}

func (p *PruneWorker) Name() string { return "prune-versions" }

func (p *PruneWorker) Interval() time.Duration { return p.interval }

// Run performs one pass, bounded by the interval.
func (p *PruneWorker) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	started := time.Now()
	pruned, err := p.pruner.Prune(ctx)
	if err != nil {
		p.logger.Error().Err(err).Msg("version pruning failed")
		return
	}

	p.logger.Info().
		Int64("pruned", pruned).
		Dur("took", time.Since(started)).
		Msg("version pruning finished")
}
