package shop

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrAlreadyRunning = errors.New("simulation already running")

// Runner drives a shop on a fixed wall-clock cadence from a single worker
// goroutine. Cancellation is cooperative: the context is checked every
// iteration, so stop latency is bounded by one interval. A step error stops
// the run and is retained for inspection.
type Runner struct {
	build    func() *Shop
	interval time.Duration

	mu      sync.Mutex
	shop    *Shop
	cancel  context.CancelFunc
	done    chan struct{}
	lastErr error
}

// NewRunner wires a runner to a shop factory. The factory runs once up front
// and again on every Reset, so each rebuilt shop starts from a fresh catalog
// and budget.
func NewRunner(build func() *Shop, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = time.Second
	}
	return &Runner{build: build, shop: build(), interval: interval}
}

// Shop returns the shop the runner currently owns.
func (r *Runner) Shop() *Shop {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shop
}

// Start launches the simulation loop. It returns ErrAlreadyRunning if a loop
// is active.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		select {
		case <-r.done:
			// previous run ended on its own; release its context
			r.cancel()
			r.cancel = nil
		default:
			return ErrAlreadyRunning
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	r.lastErr = nil

	go r.run(ctx, r.shop)
	return nil
}

func (r *Runner) run(ctx context.Context, shop *Shop) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result, err := shop.Step(ctx)
			if err != nil {
				logrus.WithError(err).Error("simulation step failed, stopping run")
				r.mu.Lock()
				r.lastErr = err
				r.mu.Unlock()
				return
			}
			logrus.WithFields(logrus.Fields{
				"time":   shop.CurrentTime().Format(time.RFC3339),
				"units":  result.UnitsSold,
				"profit": result.Profit,
			}).Debug("step complete")
		}
	}
}

// Stop cancels the loop and waits for the worker to exit. Safe to call when
// not running.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel = nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Reset stops any active run and rebuilds the shop from scratch, clearing
// any retained error. The previous shop's state is discarded.
func (r *Runner) Reset() {
	r.Stop()

	r.mu.Lock()
	r.shop = r.build()
	r.lastErr = nil
	r.mu.Unlock()
}

// Running reports whether the worker goroutine is still active.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done == nil {
		return false
	}
	select {
	case <-r.done:
		return false
	default:
		return r.cancel != nil
	}
}

// Err returns the error that ended the last run, if any.
func (r *Runner) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}
