// Package fetcher simulates a delayed data fetch behind an injectable
// capability, so callers and tests can substitute their own implementation.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/takuo/go-utilkit/internal/clock"
)

// ErrInvalidDelay is returned when a fetch is requested with a delay the
// simulator cannot schedule.
var ErrInvalidDelay = errors.New("invalid delay")

// Fetcher fetches data after a simulated delay. Implementations resolve
// exactly once per call, either with the fetched message or an error.
type Fetcher interface {
	Fetch(ctx context.Context, delay time.Duration) (string, error)
}

// Delayed is the production Fetcher. It schedules completion on its Clock,
// so tests drive it with a fake clock instead of sleeping.
type Delayed struct {
	Clock clock.Clock
}

// NewDelayed returns a Delayed fetcher on the system clock.
func NewDelayed() *Delayed {
	return &Delayed{Clock: clock.System()}
}

// Fetch waits for delay on the clock, then returns a message naming the
// elapsed delay. A negative delay fails immediately with ErrInvalidDelay;
// zero is valid and completes on the first tick. Cancelling ctx aborts the
// wait and returns ctx.Err().
func (d *Delayed) Fetch(ctx context.Context, delay time.Duration) (string, error) {
	if delay < 0 {
		return "", fmt.Errorf("%w: delay must not be negative", ErrInvalidDelay)
	}
	select {
	case <-d.Clock.After(delay):
		return fmt.Sprintf("fetched data after %dms", delay.Milliseconds()), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// FetchAll runs one fetch per delay through f with at most concurrency
// in-flight at a time, and returns the results in input order. The first
// error cancels the remaining fetches and is returned.
func FetchAll(ctx context.Context, f Fetcher, delays []time.Duration, concurrency int) ([]string, error) {
	if concurrency < 1 {
		concurrency = 1
	}
	results := make([]string, len(delays))
	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithMaxGoroutines(concurrency)
	for i, delay := range delays {
		i, delay := i, delay
		p.Go(func(ctx context.Context) error {
			msg, err := f.Fetch(ctx, delay)
			if err != nil {
				return fmt.Errorf("fetch %d: %w", i, err)
			}
			results[i] = msg
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
