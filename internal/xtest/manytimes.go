package xtest

import (
	"sync"
	"testing"
	"time"
)

type TestFunc func(t testing.TB)

type manyTimesOptions struct {
	duration time.Duration
}

type manyTimesOption func(o *manyTimesOptions)

// StopAfter overrides how long TestManyTimes keeps repeating the test.
func StopAfter(d time.Duration) manyTimesOption {
	return func(o *manyTimesOptions) {
		o.duration = d
	}
}

// TestManyTimes repeats test until the time budget is spent. The test runs at
// least once. Cleanups registered by each run are executed right after it.
func TestManyTimes(t testing.TB, test TestFunc, opts ...manyTimesOption) {
	t.Helper()

	options := manyTimesOptions{
		duration: time.Second,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	deadline := time.Now().Add(options.duration)
	for {
		runOnce(t, test)

		if t.Failed() || time.Now().After(deadline) {
			return
		}
	}
}

func runOnce(t testing.TB, test TestFunc) {
	t.Helper()

	run := &cleanupScope{
		TB: t,
	}
	defer run.cleanup()

	test(run)
}

type cleanupScope struct {
	testing.TB

	mu    sync.Mutex
	funcs []func()
}

func (s *cleanupScope) Cleanup(f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.funcs = append(s.funcs, f)
}

func (s *cleanupScope) cleanup() {
	s.mu.Lock()
	funcs := s.funcs
	s.funcs = nil
	s.mu.Unlock()

	for i := len(funcs) - 1; i >= 0; i-- {
		funcs[i]()
	}
}
