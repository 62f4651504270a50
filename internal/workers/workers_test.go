// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/ratelimit"
	"github.com/stretchr/testify/assert"
)

// mockWorker counts how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run(context.Context) {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2 := &mockWorker{}, &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2}}
	ws.Run(context.Background())

	assert.Equal(t, 1, w1.runCount)
	assert.Equal(t, 1, w2.runCount)
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	assert.NotPanics(t, func() { ws.Run(context.Background()) })
}

func TestNewWorkers(t *testing.T) {
	assert.Empty(t, NewWorkers(nil, config.Workers{}, logger.Nop()).workers)

	limiter := ratelimit.New(config.RateLimit{RPS: 1, Burst: 1, TTL: time.Minute})
	assert.Len(t, NewWorkers(limiter, config.Workers{LimiterCleanupInterval: time.Minute}, logger.Nop()).workers, 1)
}

type countingEvictor struct {
	calls atomic.Int32
}

func (c *countingEvictor) Evict() int {
	c.calls.Add(1)
	return 1
}

func TestLimiterCleanupWorker_EvictsUntilCancelled(t *testing.T) {
	ev := &countingEvictor{}
	w := &limiterCleanupWorker{limiter: ev, interval: 5 * time.Millisecond, logger: logger.Nop()}

	ctx, cancel := context.WithCancel(context.Background())
	w.Run(ctx)

	assert.Eventually(t, func() bool { return ev.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)
	stopped := ev.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, ev.calls.Load())
}
