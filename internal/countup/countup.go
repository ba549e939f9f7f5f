// Package countup animates the header counters from zero to their target.
package countup

import (
	"context"
	"math"
	"time"

	"bestsellers/landing/internal/format"

	"github.com/benbjohnson/clock"
)

// Value is the counter reading after elapsed time: a cubic ease-out from 0 to
// target, rounded to an integer. It never decreases as elapsed grows and is
// exactly target once elapsed reaches duration.
func Value(target int, elapsed, duration time.Duration) int {
	if duration <= 0 || elapsed >= duration {
		return target
	}
	if elapsed <= 0 {
		return 0
	}

	progress := float64(elapsed) / float64(duration)
	eased := 1 - math.Pow(1-progress, 3)
	return int(math.Round(float64(target) * eased))
}

// Animate writes formatted counter values through set, one per frame, until
// duration has elapsed. The last write is always the exact target, also when
// ctx is cancelled early.
func Animate(ctx context.Context, clk clock.Clock, target int, duration, frame time.Duration, set func(string)) error {
	show := func(v int) { set(format.Integer(int64(v))) }

	if duration <= 0 {
		show(target)
		return nil
	}

	start := clk.Now()
	ticker := clk.Ticker(frame)
	defer ticker.Stop()

	last := 0
	show(last)

	for {
		select {
		case <-ctx.Done():
			show(target)
			return ctx.Err()
		case <-ticker.C:
			elapsed := clk.Since(start)
			if v := Value(target, elapsed, duration); v != last {
				last = v
				show(v)
			}
			if elapsed >= duration {
				return nil
			}
		}
	}
}
