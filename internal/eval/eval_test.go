package eval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvess/dateexpr/internal/temporal"
	"github.com/calvess/dateexpr/internal/testutil"
	"github.com/calvess/dateexpr/internal/token"
)

// Token stream helpers. Evaluate consumes postfix order, so streams below
// are written operands-first.

func num(n float64) token.Token { return token.NewNumber(n, 0) }

func dt(canonical string) token.Token {
	t, err := temporal.ParseDateTime(canonical)
	if err != nil {
		panic(err)
	}
	return token.NewDateTime(t, 0)
}

func dur(iso string) token.Token {
	d, err := temporal.ParseDuration(iso)
	if err != nil {
		panic(err)
	}
	return token.NewDuration(d, 0)
}

func op(k token.Kind) token.Token { return token.New(k, 0) }

func TestEvaluateNumberArithmetic(t *testing.T) {
	tests := []struct {
		name    string
		postfix []token.Token
		want    float64
	}{
		{"addition", []token.Token{num(2), num(3), op(token.Plus)}, 5},
		{"subtraction", []token.Token{num(5), num(3), op(token.Minus)}, 2},
		{"multiplication", []token.Token{num(2), num(3), num(4), op(token.Star), op(token.Plus)}, 14},
		{"division", []token.Token{num(5), num(2), op(token.Slash)}, 2.5},
		{"unary negation", []token.Token{num(5), op(token.UnaryMinus)}, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(nil).Evaluate(tt.postfix)
			require.NoError(t, err)
			require.Equal(t, KindNumber, got.Kind())
			assert.Equal(t, tt.want, float64(got.(Number)))
		})
	}
}

func TestEvaluateDateTimeArithmetic(t *testing.T) {
	tests := []struct {
		name    string
		postfix []token.Token
		want    Value
	}{
		{
			"date-time plus duration",
			[]token.Token{dt("2024-01-01"), dur("P1D"), op(token.Plus)},
			DateTime{Time: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		},
		{
			"duration plus date-time",
			[]token.Token{dur("PT6H"), dt("2024-01-01"), op(token.Plus)},
			DateTime{Time: time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)},
		},
		{
			"date-time minus duration",
			[]token.Token{dt("2024-01-02"), dur("P1D"), op(token.Minus)},
			DateTime{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
		{
			"date-time minus date-time",
			[]token.Token{dt("2024-01-02T12:00:00"), dt("2024-01-01"), op(token.Minus)},
			Duration{Span: temporal.FromMillis(36 * 3600000)},
		},
		{
			"negative span when subtrahend is later",
			[]token.Token{dt("2024-01-01"), dt("2024-01-02"), op(token.Minus)},
			Duration{Span: temporal.FromMillis(-24 * 3600000)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(nil).Evaluate(tt.postfix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateDurationArithmetic(t *testing.T) {
	tests := []struct {
		name    string
		postfix []token.Token
		wantMS  int64
	}{
		{"sum", []token.Token{dur("P1D"), dur("PT6H"), op(token.Plus)}, 30 * 3600000},
		{"difference", []token.Token{dur("P1D"), dur("PT6H"), op(token.Minus)}, 18 * 3600000},
		{"scaled by number", []token.Token{dur("PT1H"), num(2.5), op(token.Star)}, 9000000},
		{"number times duration", []token.Token{num(3), dur("PT30M"), op(token.Star)}, 5400000},
		{"divided by number", []token.Token{dur("P1D"), num(2), op(token.Slash)}, 12 * 3600000},
		{"duration quotient", []token.Token{dur("P2D"), dur("P1D"), op(token.Slash)}, 2},
		{"unary negation", []token.Token{dur("PT1H"), op(token.UnaryMinus)}, -3600000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(nil).Evaluate(tt.postfix)
			require.NoError(t, err)
			require.Equal(t, KindDuration, got.Kind())
			assert.Equal(t, tt.wantMS, got.(Duration).Span.Millis())
		})
	}
}

func TestEvaluateNowUsesClockAtEvaluationTime(t *testing.T) {
	clock := testutil.MustClockAt("2024-06-15T12:00:00")
	got, err := New(clock).Evaluate([]token.Token{op(token.Now), dur("P1D"), op(token.Plus)})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-16T12:00:00", got.Canonical())
}

func TestEvaluateNowSamplesPerOccurrence(t *testing.T) {
	// A ticking clock observes a different instant for each now token, so
	// now - now is the (negative) interval between the two samples.
	clock := &tickingClock{
		start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		step:  time.Second,
	}
	got, err := New(clock).Evaluate([]token.Token{op(token.Now), op(token.Now), op(token.Minus)})
	require.NoError(t, err)
	require.Equal(t, KindDuration, got.Kind())
	assert.Equal(t, int64(-1000), got.(Duration).Span.Millis())
	assert.Equal(t, 2, clock.calls, "one sample per now token")
}

type tickingClock struct {
	start time.Time
	step  time.Duration
	calls int
}

func (c *tickingClock) Now() time.Time {
	t := c.start.Add(time.Duration(c.calls) * c.step)
	c.calls++
	return t
}

func TestEvaluateTypeMismatch(t *testing.T) {
	tests := []struct {
		name    string
		postfix []token.Token
	}{
		{"date-time plus date-time", []token.Token{dt("2024-01-01"), dt("2024-01-02"), op(token.Plus)}},
		{"duration times duration", []token.Token{dur("P1D"), dur("P1D"), op(token.Star)}},
		{"number minus date-time", []token.Token{num(5), dt("2024-01-01"), op(token.Minus)}},
		{"duration minus date-time", []token.Token{dur("P1D"), dt("2024-01-01"), op(token.Minus)}},
		{"number plus duration", []token.Token{num(5), dur("P1D"), op(token.Plus)}},
		{"number divided by duration", []token.Token{num(5), dur("P1D"), op(token.Slash)}},
		{"date-time times number", []token.Token{dt("2024-01-01"), num(2), op(token.Star)}},
		{"unary minus on date-time", []token.Token{dt("2024-01-01"), op(token.UnaryMinus)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(nil).Evaluate(tt.postfix)
			require.Error(t, err)
			assert.True(t, IsEvalError(err, ErrCodeTypeMismatch), "got %v", err)
		})
	}
}

func TestEvaluateTypeMismatchNamesBothOperands(t *testing.T) {
	_, err := New(nil).Evaluate([]token.Token{dt("2024-01-01"), dt("2024-01-02"), op(token.Plus)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date-time (2024-01-01T00:00:00)")
	assert.Contains(t, err.Error(), "date-time (2024-01-02T00:00:00)")
}

func TestEvaluateDivisionByZero(t *testing.T) {
	tests := []struct {
		name    string
		postfix []token.Token
	}{
		{"number by zero", []token.Token{num(5), num(0), op(token.Slash)}},
		{"zero by zero", []token.Token{num(0), num(0), op(token.Slash)}},
		{"duration by zero number", []token.Token{dur("P1D"), num(0), op(token.Slash)}},
		{"duration by zero duration", []token.Token{dur("P1D"), dur("PT0S"), op(token.Slash)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(nil).Evaluate(tt.postfix)
			require.Error(t, err)
			assert.True(t, IsEvalError(err, ErrCodeDivisionByZero), "got %v", err)
		})
	}
}

func TestEvaluateInvalidExpression(t *testing.T) {
	tests := []struct {
		name    string
		postfix []token.Token
	}{
		{"empty stream", nil},
		{"binary underflow", []token.Token{num(1), op(token.Plus)}},
		{"unary underflow", []token.Token{op(token.UnaryMinus)}},
		{"leftover operands", []token.Token{num(1), num(2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(nil).Evaluate(tt.postfix)
			require.Error(t, err)
			assert.True(t, IsEvalError(err, ErrCodeInvalidExpression), "got %v", err)
		})
	}
}

func TestEvaluateUnknownOperatorIsDefensive(t *testing.T) {
	// A paren can only reach the evaluator through a bug in the converter.
	_, err := New(nil).Evaluate([]token.Token{num(1), op(token.LeftParen)})
	require.Error(t, err)
	assert.True(t, IsEvalError(err, ErrCodeUnknownOperator), "got %v", err)
}
