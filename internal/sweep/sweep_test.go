package sweep

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingRunner struct {
	calls atomic.Int64
	err   error
}

func (r *countingRunner) Sweep(context.Context) error {
	r.calls.Add(1)
	return r.err
}

func TestSweeperRunsEveryTaskOnStart(t *testing.T) {
	first := &countingRunner{}
	second := &countingRunner{}

	s := NewSweeper(time.Hour, first, second)
	s.Start(context.Background())
	s.Stop()

	if first.calls.Load() < 1 || second.calls.Load() < 1 {
		t.Fatalf("expected both tasks to run at least once, got %d and %d",
			first.calls.Load(), second.calls.Load())
	}
}

func TestSweeperFailureDoesNotSkipLaterTasks(t *testing.T) {
	failing := &countingRunner{err: errors.New("boom")}
	after := &countingRunner{}

	s := NewSweeper(time.Hour, failing, after)
	s.Start(context.Background())
	s.Stop()

	if after.calls.Load() < 1 {
		t.Fatal("expected the task after a failing one to still run")
	}
}

func TestRunnerFuncAdaptsFunction(t *testing.T) {
	var called bool
	r := RunnerFunc(func(context.Context) error {
		called = true
		return nil
	})
	if err := r.Sweep(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("expected the wrapped function to be called")
	}
}
