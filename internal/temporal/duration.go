package temporal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rickb777/period"
)

// Duration is a signed span of time held as a whole number of milliseconds.
// The zero value is a zero-length span.
type Duration struct {
	d time.Duration
}

// ParseDuration parses an ISO-8601 duration literal (P prefix, optional date
// part with Y M W D, optional T + time part with H M S). Designators are
// case-insensitive. Calendar units are resolved to milliseconds immediately;
// see the package doc for the approximation used.
func ParseDuration(s string) (Duration, error) {
	p, err := period.Parse(strings.ToUpper(s))
	if err != nil {
		return Duration{}, fmt.Errorf("parsing duration %q: %w", s, err)
	}
	d, _ := p.Duration()
	return FromTimeDuration(d), nil
}

// FromTimeDuration builds a Duration, rounding to the nearest millisecond.
func FromTimeDuration(d time.Duration) Duration {
	return Duration{d: d.Round(time.Millisecond)}
}

// FromMillis builds a Duration from a whole millisecond count.
func FromMillis(ms int64) Duration {
	return Duration{d: time.Duration(ms) * time.Millisecond}
}

// Millis returns the normalized millisecond count.
func (d Duration) Millis() int64 {
	return int64(d.d / time.Millisecond)
}

// TimeDuration returns the span as a time.Duration.
func (d Duration) TimeDuration() time.Duration {
	return d.d
}

// IsZero reports whether the span has zero length.
func (d Duration) IsZero() bool {
	return d.d == 0
}

// Negate returns the span with its sign flipped.
func (d Duration) Negate() Duration {
	return Duration{d: -d.d}
}

// Add returns the millisecond-normalized sum of two spans.
func (d Duration) Add(other Duration) Duration {
	return Duration{d: d.d + other.d}
}

// Sub returns the millisecond-normalized difference of two spans.
func (d Duration) Sub(other Duration) Duration {
	return Duration{d: d.d - other.d}
}

// Scale multiplies the span by f, rounding to the nearest millisecond.
func (d Duration) Scale(f float64) Duration {
	return FromMillis(int64(math.Round(float64(d.Millis()) * f)))
}

// Div divides the span by f, rounding to the nearest millisecond.
// The caller must reject a zero divisor first.
func (d Duration) Div(f float64) Duration {
	return FromMillis(int64(math.Round(float64(d.Millis()) / f)))
}

// ISO renders the span in canonical ISO-8601 form, normalized with days as
// the largest unit and seconds as the smallest. A zero span is "PT0S".
func (d Duration) ISO() string {
	days, hours, minutes, seconds, millis, negative := d.Components()

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteByte('P')
	if days != 0 {
		fmt.Fprintf(&b, "%dD", days)
	}
	if hours != 0 || minutes != 0 || seconds != 0 || millis != 0 {
		b.WriteByte('T')
		if hours != 0 {
			fmt.Fprintf(&b, "%dH", hours)
		}
		if minutes != 0 {
			fmt.Fprintf(&b, "%dM", minutes)
		}
		if seconds != 0 || millis != 0 {
			b.WriteString(formatSeconds(seconds, millis))
			b.WriteByte('S')
		}
	} else if days == 0 {
		b.WriteString("T0S")
	}
	return b.String()
}

// Components decomposes the span magnitude into day/hour/minute/second parts
// plus a millisecond remainder, with the sign reported separately.
func (d Duration) Components() (days, hours, minutes, seconds, millis int64, negative bool) {
	ms := d.Millis()
	if ms < 0 {
		negative = true
		ms = -ms
	}
	days = ms / millisPerDay
	ms %= millisPerDay
	hours = ms / millisPerHour
	ms %= millisPerHour
	minutes = ms / millisPerMinute
	ms %= millisPerMinute
	seconds = ms / millisPerSecond
	millis = ms % millisPerSecond
	return days, hours, minutes, seconds, millis, negative
}

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
)

// formatSeconds renders a seconds component, attaching the millisecond
// remainder as a trimmed decimal fraction.
func formatSeconds(seconds, millis int64) string {
	if millis == 0 {
		return fmt.Sprintf("%d", seconds)
	}
	return strings.TrimRight(fmt.Sprintf("%d.%03d", seconds, millis), "0")
}
