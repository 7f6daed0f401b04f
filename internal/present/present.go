// Package present renders a final calculator value for display. It is the
// only locale-aware layer; the pipeline itself deals in canonical forms.
//
// The rendered shape is "<locale-rendered value> (<canonical value>)".
package present

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/calvess/dateexpr/internal/eval"
	"github.com/calvess/dateexpr/internal/temporal"
)

// displayDateTimeLayout is the human-readable date-time rendering.
const displayDateTimeLayout = "Mon, 2 Jan 2006 15:04:05"

// Presenter renders values for one locale.
type Presenter struct {
	printer *message.Printer
}

// New creates a Presenter for the given locale tag.
func New(tag language.Tag) *Presenter {
	return &Presenter{printer: message.NewPrinter(tag)}
}

// Render produces the full display form: locale rendering plus canonical
// form in parentheses.
func (p *Presenter) Render(v eval.Value) string {
	return fmt.Sprintf("%s (%s)", p.Display(v), v.Canonical())
}

// Display produces only the locale-rendered part.
func (p *Presenter) Display(v eval.Value) string {
	switch v := v.(type) {
	case eval.Number:
		return p.printer.Sprint(number.Decimal(float64(v)))
	case eval.DateTime:
		return v.Time.Format(displayDateTimeLayout)
	case eval.Duration:
		return p.displayDuration(v.Span)
	}
	return v.Canonical()
}

// displayDuration spells out the span component by component, normalized
// with days as the largest unit and seconds as the smallest.
func (p *Presenter) displayDuration(d temporal.Duration) string {
	days, hours, minutes, seconds, millis, negative := d.Components()
	if days == 0 && hours == 0 && minutes == 0 && seconds == 0 && millis == 0 {
		return "0 seconds"
	}

	var parts []string
	appendPart := func(n int64, unit string) {
		if n == 0 {
			return
		}
		parts = append(parts, p.printer.Sprintf("%v %s", number.Decimal(n), pluralize(n, unit)))
	}
	appendPart(days, "day")
	appendPart(hours, "hour")
	appendPart(minutes, "minute")
	if millis != 0 {
		frac := strings.TrimRight(fmt.Sprintf("%d.%03d", seconds, millis), "0")
		parts = append(parts, frac+" seconds")
	} else if seconds != 0 {
		parts = append(parts, p.printer.Sprintf("%v %s", number.Decimal(seconds), pluralize(seconds, "second")))
	}

	out := strings.Join(parts, " ")
	if negative {
		return "minus " + out
	}
	return out
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
