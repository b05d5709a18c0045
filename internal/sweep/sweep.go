// Package sweep runs periodic background maintenance: the featured photo
// sweep, which promotes photos that crossed the like threshold while no one
// was liking them through the API and retires photos whose featured window
// has lapsed, and the purge of expired refresh tokens.
package sweep

import (
	"context"
	"time"

	"github.com/campushub/backend/internal/pkg/logger"
)

// Runner is a maintenance task driven by the sweeper
type Runner interface {
	Sweep(ctx context.Context) error
}

// RunnerFunc adapts a plain function to the Runner interface
type RunnerFunc func(ctx context.Context) error

// Sweep calls f.
func (f RunnerFunc) Sweep(ctx context.Context) error { return f(ctx) }

// Sweeper invokes its runners on a fixed interval until stopped
type Sweeper struct {
	runners  []Runner
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewSweeper creates a sweeper that runs the given tasks every interval
func NewSweeper(interval time.Duration, runners ...Runner) *Sweeper {
	return &Sweeper{
		runners:  runners,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop. One sweep runs immediately so a restart
// never leaves stale state sitting until the first tick.
func (s *Sweeper) Start(ctx context.Context) {
	go s.loop(ctx)
}

func (s *Sweeper) loop(ctx context.Context) {
	defer close(s.done)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// runOnce runs every task even when an earlier one fails
func (s *Sweeper) runOnce(ctx context.Context) {
	for _, r := range s.runners {
		if err := r.Sweep(ctx); err != nil {
			logger.Error().Err(err).Msg("Background sweep failed")
		}
	}
}

// Stop halts the loop and waits for any in-flight sweep to return
func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
}
