package eval

import (
	"errors"
	"fmt"

	"github.com/calvess/dateexpr/internal/token"
)

// ErrorCode categorizes evaluation errors. All are terminal for the single
// evaluation; there is no partial result or retry.
type ErrorCode string

const (
	// ErrCodeInvalidExpression indicates a structurally malformed postfix
	// stream: an operand stack underflow, or more or fewer than exactly one
	// value left when the stream is exhausted.
	ErrCodeInvalidExpression ErrorCode = "INVALID_EXPRESSION"

	// ErrCodeTypeMismatch indicates an operator applied to operand kinds it
	// has no defined meaning for.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// ErrCodeDivisionByZero indicates a zero numeric or zero-length duration
	// divisor, detected before any rounding.
	ErrCodeDivisionByZero ErrorCode = "DIVISION_BY_ZERO"

	// ErrCodeUnknownOperator is defensive: the operator set is closed, so it
	// should be unreachable.
	ErrCodeUnknownOperator ErrorCode = "UNKNOWN_OPERATOR"
)

// EvalError reports a failure while consuming the postfix stream.
type EvalError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsEvalError reports whether err is an EvalError with the given code.
// Uses errors.As to handle wrapped errors.
func IsEvalError(err error, code ErrorCode) bool {
	var ee *EvalError
	if errors.As(err, &ee) {
		return ee.Code == code
	}
	return false
}

func newInvalidExpression(format string, args ...any) *EvalError {
	return &EvalError{Code: ErrCodeInvalidExpression, Message: fmt.Sprintf(format, args...)}
}

// newTypeMismatch names both offending kinds and their values, so the
// message reads e.g.
// `operator "+" cannot combine date-time (2024-01-01T00:00:00) and date-time (2024-01-02T00:00:00)`.
func newTypeMismatch(op token.Kind, a, b Value) *EvalError {
	return &EvalError{
		Code: ErrCodeTypeMismatch,
		Message: fmt.Sprintf("operator %q cannot combine %s (%s) and %s (%s)",
			op, a.Kind(), a.Canonical(), b.Kind(), b.Canonical()),
	}
}

func newUnaryTypeMismatch(v Value) *EvalError {
	return &EvalError{
		Code:    ErrCodeTypeMismatch,
		Message: fmt.Sprintf("unary minus cannot negate %s (%s)", v.Kind(), v.Canonical()),
	}
}

func newDivisionByZero(a Value) *EvalError {
	return &EvalError{
		Code:    ErrCodeDivisionByZero,
		Message: fmt.Sprintf("%s (%s) divided by zero", a.Kind(), a.Canonical()),
	}
}

func newUnknownOperator(k token.Kind) *EvalError {
	return &EvalError{
		Code:    ErrCodeUnknownOperator,
		Message: fmt.Sprintf("no rule for token %q", k),
	}
}
