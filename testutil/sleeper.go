package testutil

import (
	"context"
	"sync"
	"time"
)

// Sleeper records requested waits and returns at once. It satisfies both
// httpclient.Sleeper and batch.Sleeper.
type Sleeper struct {
	mu    sync.Mutex
	waits []time.Duration
	err   error
}

func NewSleeper() *Sleeper {
	return &Sleeper{mu: sync.Mutex{}, waits: nil, err: nil}
}

// FailWith makes every later Sleep return err, as a cancelled wait would.
func (s *Sleeper) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = err
}

func (s *Sleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.waits = append(s.waits, d)

	if s.err != nil {
		return s.err
	}

	return ctx.Err()
}

func (s *Sleeper) Waits() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]time.Duration(nil), s.waits...)
}

func (s *Sleeper) Total() time.Duration {
	var total time.Duration

	for _, d := range s.Waits() {
		total += d
	}

	return total
}
