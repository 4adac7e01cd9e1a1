// Package clock holds the waiting primitives used by polling loops.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for d or until ctx is done.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff returns the delay after the given number of consecutive failures.
// The delay starts at base, doubles per failure and never exceeds limit.
func Backoff(base, limit time.Duration, failures int) time.Duration {
	if base <= 0 {
		return 0
	}
	if limit < base {
		limit = base
	}
	d := base
	for i := 0; i < failures; i++ {
		if d >= limit/2 {
			return limit
		}
		d *= 2
	}
	return d
}
