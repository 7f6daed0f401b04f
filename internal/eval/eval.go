package eval

import (
	"math"

	"github.com/calvess/dateexpr/internal/temporal"
	"github.com/calvess/dateexpr/internal/token"
)

// Evaluator consumes postfix token streams. It is stateless between calls;
// the only injected collaborator is the clock behind now.
type Evaluator struct {
	clock Clock
}

// New creates an Evaluator. A nil clock defaults to the system clock.
func New(clock Clock) *Evaluator {
	if clock == nil {
		clock = RealClock{}
	}
	return &Evaluator{clock: clock}
}

// Evaluate consumes a postfix token stream and returns the single remaining
// value. Exactly one value must remain on the operand stack at the end;
// anything else is INVALID_EXPRESSION.
func (ev *Evaluator) Evaluate(tokens []token.Token) (Value, error) {
	var stack []Value

	pop := func() (Value, bool) {
		if len(stack) == 0 {
			return nil, false
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, true
	}

	for _, t := range tokens {
		switch t.Kind {
		case token.Number:
			stack = append(stack, Number(t.Num))
		case token.DateTime:
			stack = append(stack, DateTime{Time: t.Time})
		case token.Duration:
			stack = append(stack, Duration{Span: t.Span})
		case token.Now:
			// Sampled here, once per occurrence, not at tokenization time.
			stack = append(stack, DateTime{Time: ev.clock.Now()})
		case token.UnaryMinus:
			v, ok := pop()
			if !ok {
				return nil, newInvalidExpression("operand stack underflow at %q", t.Kind)
			}
			negated, err := negate(v)
			if err != nil {
				return nil, err
			}
			stack = append(stack, negated)
		case token.Plus, token.Minus, token.Star, token.Slash:
			b, ok := pop()
			if !ok {
				return nil, newInvalidExpression("operand stack underflow at %q", t.Kind)
			}
			a, ok := pop()
			if !ok {
				return nil, newInvalidExpression("operand stack underflow at %q", t.Kind)
			}
			result, err := apply(t.Kind, a, b)
			if err != nil {
				return nil, err
			}
			stack = append(stack, result)
		default:
			return nil, newUnknownOperator(t.Kind)
		}
	}

	if len(stack) != 1 {
		return nil, newInvalidExpression("expected a single result, %d values remain", len(stack))
	}
	return stack[0], nil
}

// negate handles unary minus: numbers and durations flip sign, a date-time
// has no negation.
func negate(v Value) (Value, error) {
	switch v := v.(type) {
	case Number:
		return -v, nil
	case Duration:
		return Duration{Span: v.Span.Negate()}, nil
	default:
		return nil, newUnaryTypeMismatch(v)
	}
}

func apply(op token.Kind, a, b Value) (Value, error) {
	switch op {
	case token.Plus:
		return add(a, b)
	case token.Minus:
		return subtract(a, b)
	case token.Star:
		return multiply(a, b)
	case token.Slash:
		return divide(a, b)
	default:
		return nil, newUnknownOperator(op)
	}
}

func add(a, b Value) (Value, error) {
	switch a := a.(type) {
	case Number:
		if b, ok := b.(Number); ok {
			return a + b, nil
		}
	case DateTime:
		if b, ok := b.(Duration); ok {
			return DateTime{Time: a.Time.Add(b.Span.TimeDuration())}, nil
		}
	case Duration:
		switch b := b.(type) {
		case DateTime:
			return DateTime{Time: b.Time.Add(a.Span.TimeDuration())}, nil
		case Duration:
			return Duration{Span: a.Span.Add(b.Span)}, nil
		}
	}
	return nil, newTypeMismatch(token.Plus, a, b)
}

func subtract(a, b Value) (Value, error) {
	switch a := a.(type) {
	case Number:
		if b, ok := b.(Number); ok {
			return a - b, nil
		}
	case DateTime:
		switch b := b.(type) {
		case Duration:
			return DateTime{Time: a.Time.Add(-b.Span.TimeDuration())}, nil
		case DateTime:
			// date-time minus date-time: the duration of a since b.
			return Duration{Span: temporal.FromTimeDuration(a.Time.Sub(b.Time))}, nil
		}
	case Duration:
		if b, ok := b.(Duration); ok {
			return Duration{Span: a.Span.Sub(b.Span)}, nil
		}
	}
	return nil, newTypeMismatch(token.Minus, a, b)
}

func multiply(a, b Value) (Value, error) {
	switch a := a.(type) {
	case Number:
		switch b := b.(type) {
		case Number:
			return a * b, nil
		case Duration:
			return Duration{Span: b.Span.Scale(float64(a))}, nil
		}
	case Duration:
		if b, ok := b.(Number); ok {
			return Duration{Span: a.Span.Scale(float64(b))}, nil
		}
	}
	return nil, newTypeMismatch(token.Star, a, b)
}

func divide(a, b Value) (Value, error) {
	switch a := a.(type) {
	case Number:
		if b, ok := b.(Number); ok {
			if b == 0 {
				return nil, newDivisionByZero(a)
			}
			return a / b, nil
		}
	case Duration:
		switch b := b.(type) {
		case Number:
			if b == 0 {
				return nil, newDivisionByZero(a)
			}
			return Duration{Span: a.Span.Div(float64(b))}, nil
		case Duration:
			if b.Span.IsZero() {
				return nil, newDivisionByZero(a)
			}
			// The millisecond quotient is itself wrapped as a duration,
			// rounded to the nearest millisecond.
			quotient := float64(a.Span.Millis()) / float64(b.Span.Millis())
			return Duration{Span: temporal.FromMillis(int64(math.Round(quotient)))}, nil
		}
	}
	return nil, newTypeMismatch(token.Slash, a, b)
}
