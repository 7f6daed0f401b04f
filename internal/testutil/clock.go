// Package testutil provides deterministic test doubles shared across the
// pipeline's test suites.
package testutil

import (
	"fmt"
	"time"

	"github.com/calvess/dateexpr/internal/temporal"
)

// FixedClock always reports the same instant, making expressions that use
// the now keyword deterministic under test.
type FixedClock struct {
	Instant time.Time
}

// Now implements eval.Clock.
func (c FixedClock) Now() time.Time { return c.Instant }

// ClockAt builds a FixedClock from a canonical date-time string.
func ClockAt(canonical string) (FixedClock, error) {
	t, err := temporal.ParseDateTime(canonical)
	if err != nil {
		return FixedClock{}, fmt.Errorf("fixed clock instant: %w", err)
	}
	return FixedClock{Instant: t}, nil
}

// MustClockAt is ClockAt for test setup where the literal is a constant.
func MustClockAt(canonical string) FixedClock {
	c, err := ClockAt(canonical)
	if err != nil {
		panic(err)
	}
	return c
}
