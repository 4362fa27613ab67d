package helpers

import (
	"context"
	"time"
)

// SleepFor pauses the calling test step for d using a one-shot timer.
func SleepFor(d time.Duration) {
	_ = SleepForContext(context.Background(), d)
}

// SleepForContext is SleepFor that returns early with ctx.Err() when ctx
// is done first.
func SleepForContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
