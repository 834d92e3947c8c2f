// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matveev

package workers

import (
	"context"
	"sync"
	"time"
)

const defaultHealthInterval = 15 * time.Second

type healthProber struct {
	health   HealthChecker
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHealthProber creates a healthProber that calls health.CheckNow on a
// ticker. The prober is idle until Start is called. If interval is zero
// or negative it defaults to 15 seconds.
func NewHealthProber(health HealthChecker, interval time.Duration) Worker {
	if interval <= 0 {
		interval = defaultHealthInterval
	}

	return &healthProber{health: health, interval: interval}
}

// Start implements Worker. It stops any previously running prober, fires
// an immediate check so the UI leaves the "checking" state without
// waiting a full interval, then keeps checking every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (p *healthProber) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	probeCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()

		p.health.CheckNow(probeCtx)

		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-probeCtx.Done():
				return
			case <-t.C:
				p.health.CheckNow(probeCtx)
			}
		}
	}()
}

// Stop implements Worker. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// prober is not running (no-op in that case).
func (p *healthProber) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
