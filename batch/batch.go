// Package batch runs a list of tasks one after another and pauses between
// groups of them, so that large imports stay below the API's rate limit.
package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// Disabled turns batching off when passed as size.
	Disabled = -1

	defaultSize = 50
)

var ErrStopped = errors.New("batch: stopped")

type Task[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Index int
	Value T
	Err   error
}

type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type timerSleeper struct{}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type Runner struct {
	name        string
	size        int
	interval    time.Duration
	execTimeout time.Duration
	stopOnError bool
	sleeper     Sleeper
}

type Option func(*Runner)

func New(opts ...Option) *Runner {
	runner := &Runner{
		name:        "batch",
		size:        defaultSize,
		interval:    0,
		execTimeout: 0,
		stopOnError: false,
		sleeper:     timerSleeper{},
	}

	for _, opt := range opts {
		opt(runner)
	}

	return runner
}

// WithSize sets how many tasks run between two pauses. Zero is treated as
// one and Disabled (or any negative size) never pauses.
func WithSize(size int) Option {
	return func(r *Runner) {
		switch {
		case size == 0:
			r.size = 1
		case size < 0:
			r.size = Disabled
		default:
			r.size = size
		}
	}
}

// WithInterval sets the pause between batches. Zero disables waiting.
func WithInterval(interval time.Duration) Option {
	return func(r *Runner) {
		if interval >= 0 {
			r.interval = interval
		}
	}
}

func WithExecutionTimeout(timeout time.Duration) Option {
	return func(r *Runner) {
		if timeout > 0 {
			r.execTimeout = timeout
		}
	}
}

// WithStopOnError ends the run at the first failing task instead of
// recording the error and moving on.
func WithStopOnError(stop bool) Option {
	return func(r *Runner) {
		r.stopOnError = stop
	}
}

func WithSleeper(sleeper Sleeper) Option {
	return func(r *Runner) {
		if sleeper != nil {
			r.sleeper = sleeper
		}
	}
}

func WithName(name string) Option {
	return func(r *Runner) {
		if name != "" {
			r.name = name
		}
	}
}

func (r *Runner) Name() string {
	return r.name
}

func (r *Runner) shouldPause(index int) bool {
	return index > 0 && r.size > 0 && r.interval > 0 && index%r.size == 0
}

// Run executes tasks in order. Every task gets a result, failed ones carry
// their error. The returned error is only set when the run ended early,
// either because ctx was cancelled or a task failed under WithStopOnError.
func Run[T any](ctx context.Context, r *Runner, tasks []Task[T]) ([]Result[T], error) {
	results := make([]Result[T], 0, len(tasks))

	log.Debug().
		Str("runner", r.name).
		Int("tasks", len(tasks)).
		Int("batch_size", r.size).
		Dur("batch_interval", r.interval).
		Msg("Batch run is starting.")

	for index, task := range tasks {
		if r.shouldPause(index) {
			log.Info().
				Str("runner", r.name).
				Int("completed", index).
				Dur("interval", r.interval).
				Msg("Batch completed, pausing.")

			if err := r.sleeper.Sleep(ctx, r.interval); err != nil {
				return results, fmt.Errorf("%w: %w", ErrStopped, err)
			}
		}

		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("%w: %w", ErrStopped, err)
		}

		value, err := execute(ctx, r.execTimeout, task)
		results = append(results, Result[T]{Index: index, Value: value, Err: err})

		if err == nil {
			continue
		}

		log.Error().
			Err(err).
			Str("runner", r.name).
			Int("index", index).
			Msg("Task failed.")

		if r.stopOnError {
			return results, fmt.Errorf("%w: task %d: %w", ErrStopped, index, err)
		}
	}

	return results, nil
}

//nolint:ireturn
func execute[T any](ctx context.Context, timeout time.Duration, task Task[T]) (T, error) {
	var cancel context.CancelFunc

	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	defer cancel()

	return task(ctx)
}

// Failed counts the results that carry an error.
func Failed[T any](results []Result[T]) int {
	failed := 0

	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}

	return failed
}
