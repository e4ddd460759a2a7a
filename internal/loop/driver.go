package loop

import (
	"context"
	"sync"
	"time"

	"github.com/tomz197/starfall/internal/loop/config"
)

// Driver owns the single tick registration of a game. Starting it again
// replaces the previous registration, so two tickers can never drive the
// same game.
type Driver struct {
	// Interval between ticks. Zero means config.TickTime.
	Interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Start cancels any running registration and begins calling step with the
// elapsed milliseconds since the previous tick. It returns immediately; the
// registration ends when ctx is cancelled or Stop is called.
func (d *Driver) Start(ctx context.Context, step func(dt float64)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	d.cancel, d.done = cancel, done

	interval := d.Interval
	if interval <= 0 {
		interval = config.TickTime
	}

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		last := time.Now()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				dt := float64(now.Sub(last)) / float64(time.Millisecond)
				last = now
				step(min(dt, config.MaxStepMS))
			}
		}
	}()
}

// Stop cancels the registration and waits for the last step to return.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

// Running reports whether a registration is active.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done == nil {
		return false
	}
	select {
	case <-d.done:
		return false
	default:
		return true
	}
}

func (d *Driver) stopLocked() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.done
	d.cancel, d.done = nil, nil
}
