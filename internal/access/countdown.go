package access

import (
	"context"
	"sync"
	"time"
)

// Countdown runs a callback periodically until the callback asks to stop or
// the countdown is cancelled. Only one run is active at a time; starting a
// new run cancels the previous one.
type Countdown struct {
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewCountdown creates a countdown that ticks every interval.
func NewCountdown(interval time.Duration) *Countdown {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Countdown{interval: interval}
}

// Start begins ticking. tick runs on the countdown goroutine and returns
// false to end the run.
func (c *Countdown) Start(ctx context.Context, tick func() bool) {
	c.Stop()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	c.mu.Lock()
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				if !tick() {
					return
				}
			}
		}
	}()
}

// Stop cancels the active run, if any, and waits for it to finish. It must
// not be called from inside the tick callback.
func (c *Countdown) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether a run is in progress.
func (c *Countdown) Running() bool {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()

	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

// Shutdown stops the countdown
func (c *Countdown) Shutdown() {
	c.Stop()
}
