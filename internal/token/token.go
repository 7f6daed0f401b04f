package token

import (
	"strconv"
	"time"

	"github.com/calvess/dateexpr/internal/temporal"
)

// Kind identifies a token variant. The set is closed: operands (Number,
// DateTime, Duration, Now), four binary operators, unary minus as its own
// kind distinct from binary minus, and the two parentheses.
type Kind int

const (
	Number Kind = iota
	DateTime
	Duration
	Now
	Plus
	Minus
	Star
	Slash
	UnaryMinus
	LeftParen
	RightParen
)

// String returns the display name used in diagnostics and pipeline traces.
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case DateTime:
		return "date-time"
	case Duration:
		return "duration"
	case Now:
		return "now"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case UnaryMinus:
		return "unary-minus"
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	}
	return "unknown"
}

// Token is one lexical unit. Exactly one payload field is meaningful,
// selected by Kind; operator and paren tokens carry no payload.
type Token struct {
	Kind Kind
	Num  float64           // valid when Kind == Number
	Time time.Time         // valid when Kind == DateTime
	Span temporal.Duration // valid when Kind == Duration
	Pos  int               // rune offset into the whitespace-stripped input
}

// NewNumber builds a numeric operand token.
func NewNumber(n float64, pos int) Token {
	return Token{Kind: Number, Num: n, Pos: pos}
}

// NewDateTime builds a date-time operand token.
func NewDateTime(t time.Time, pos int) Token {
	return Token{Kind: DateTime, Time: t, Pos: pos}
}

// NewDuration builds a duration operand token.
func NewDuration(d temporal.Duration, pos int) Token {
	return Token{Kind: Duration, Span: d, Pos: pos}
}

// New builds a payload-free token (operators, parens, now).
func New(k Kind, pos int) Token {
	return Token{Kind: k, Pos: pos}
}

// IsOperand reports whether the token pushes a value during evaluation.
func (t Token) IsOperand() bool {
	switch t.Kind {
	case Number, DateTime, Duration, Now:
		return true
	}
	return false
}

// IsOperator reports whether the token is a binary operator or unary minus.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, UnaryMinus:
		return true
	}
	return false
}

// String renders the token for pipeline traces. Operand payloads appear in
// canonical form so traces are deterministic.
func (t Token) String() string {
	switch t.Kind {
	case Number:
		return "number(" + strconv.FormatFloat(t.Num, 'g', -1, 64) + ")"
	case DateTime:
		return "date-time(" + temporal.FormatDateTime(t.Time) + ")"
	case Duration:
		return "duration(" + t.Span.ISO() + ")"
	}
	return t.Kind.String()
}
