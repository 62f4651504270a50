// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/ratelimit"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(limiter *ratelimit.Limiter, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if limiter != nil {
		w.workers = append(w.workers, NewLimiterCleanupWorker(limiter, cfg.LimiterCleanupInterval, logger))
	}
	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
