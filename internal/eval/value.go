package eval

import (
	"strconv"
	"time"

	"github.com/calvess/dateexpr/internal/temporal"
)

// Kind identifies a runtime value variant.
type Kind int

const (
	KindNumber Kind = iota
	KindDateTime
	KindDuration
)

// String returns the kind name used in type-mismatch messages and the
// presenter's structured output.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindDateTime:
		return "date-time"
	case KindDuration:
		return "duration"
	}
	return "unknown"
}

// Value is a sealed interface over the evaluator's runtime values.
// Only Number, DateTime, and Duration implement it.
type Value interface {
	// Kind identifies the variant.
	Kind() Kind

	// Canonical returns the unambiguous machine-readable string form.
	Canonical() string

	value() // sealed
}

// Number is a double-precision numeric value.
type Number float64

func (Number) value() {}

// Kind implements Value.
func (Number) Kind() Kind { return KindNumber }

// Canonical renders the number in its shortest exact decimal form.
func (n Number) Canonical() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// DateTime is a zone-less absolute calendar date and wall-clock time.
type DateTime struct {
	Time time.Time
}

func (DateTime) value() {}

// Kind implements Value.
func (DateTime) Kind() Kind { return KindDateTime }

// Canonical renders the date-time as YYYY-MM-DDTHH:MM:SS.
func (d DateTime) Canonical() string {
	return temporal.FormatDateTime(d.Time)
}

// Duration is a signed millisecond-normalized span.
type Duration struct {
	Span temporal.Duration
}

func (Duration) value() {}

// Kind implements Value.
func (Duration) Kind() Kind { return KindDuration }

// Canonical renders the span in normalized ISO-8601 form.
func (d Duration) Canonical() string {
	return d.Span.ISO()
}
