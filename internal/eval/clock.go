package eval

import "time"

// Clock supplies the instant pushed for the now keyword. Injecting it keeps
// the evaluator deterministic under test.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now implements Clock.
func (RealClock) Now() time.Time { return time.Now() }
