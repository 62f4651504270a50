// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/ratelimit"
)

// evictor is the part of [ratelimit.Limiter] the cleanup worker needs.
type evictor interface {
	Evict() int
}

type limiterCleanupWorker struct {
	limiter  evictor
	interval time.Duration

	logger *logger.Logger
}

// NewLimiterCleanupWorker drops idle rate limiter buckets every interval so
// the map does not grow with every client address ever seen.
func NewLimiterCleanupWorker(limiter *ratelimit.Limiter, interval time.Duration, logger *logger.Logger) Worker {
	return &limiterCleanupWorker{limiter: limiter, interval: interval, logger: logger}
}

func (w *limiterCleanupWorker) Run(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				w.logger.Debug().Msg("limiter cleanup worker stopped")
				return
			case <-ticker.C:
				if n := w.limiter.Evict(); n > 0 {
					w.logger.Debug().Int("evicted", n).Msg("idle rate limiter buckets removed")
				}
			}
		}
	}()
}
