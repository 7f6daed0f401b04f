package temporal

import (
	"fmt"
	"strings"
	"time"
)

// CanonicalDateTimeLayout is the unambiguous machine-readable form of a
// DateTime. Parsing and rendering both use it, so date literals round-trip.
const CanonicalDateTimeLayout = "2006-01-02T15:04:05"

// dateTimeLayouts lists the accepted literal shapes, longest first.
// Missing time components default to zero.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02",
}

// ParseDateTime parses a zone-less date-time literal of the form
// YYYY-MM-DD[THH[:MM[:SS]]]. The T separator is case-insensitive.
func ParseDateTime(s string) (time.Time, error) {
	normalized := strings.Replace(s, "t", "T", 1)
	for _, layout := range dateTimeLayouts {
		if len(normalized) != len(layout) {
			continue
		}
		t, err := time.Parse(layout, normalized)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing date-time %q: %w", s, err)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("parsing date-time %q: unrecognized shape", s)
}

// FormatDateTime renders t in canonical form.
func FormatDateTime(t time.Time) string {
	return t.Format(CanonicalDateTimeLayout)
}
