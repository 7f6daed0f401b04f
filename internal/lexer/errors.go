package lexer

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes lexical errors. All are fatal for the scan; the
// tokenizer stops at the first malformed lexeme.
type ErrorCode string

const (
	// ErrCodeInvalidCharacter indicates a character no recognizer accepts.
	ErrCodeInvalidCharacter ErrorCode = "INVALID_CHARACTER"

	// ErrCodeInvalidNumber indicates a numeric lexeme that does not parse.
	ErrCodeInvalidNumber ErrorCode = "INVALID_NUMBER"

	// ErrCodeInvalidDate indicates text shaped like a date literal whose
	// fields do not form a real date-time. This is a hard error, never a
	// fallback to numeric scanning.
	ErrCodeInvalidDate ErrorCode = "INVALID_DATE"

	// ErrCodeInvalidDuration indicates a P-prefixed lexeme that is not a
	// well-formed ISO-8601 duration.
	ErrCodeInvalidDuration ErrorCode = "INVALID_DURATION"
)

// LexError reports the first unrecognized or malformed lexeme in the input.
type LexError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Pos is the rune offset into the whitespace-stripped input.
	Pos int

	// Lexeme is the offending text.
	Lexeme string

	// Err is the underlying parse error, if any.
	Err error
}

// Error implements the error interface.
func (e *LexError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q at offset %d: %v", e.Code, e.Lexeme, e.Pos, e.Err)
	}
	return fmt.Sprintf("%s: %q at offset %d", e.Code, e.Lexeme, e.Pos)
}

// Unwrap returns the underlying parse error.
func (e *LexError) Unwrap() error {
	return e.Err
}

// IsLexError reports whether err is a LexError with the given code.
// Uses errors.As to handle wrapped errors.
func IsLexError(err error, code ErrorCode) bool {
	var le *LexError
	if errors.As(err, &le) {
		return le.Code == code
	}
	return false
}

func newLexError(code ErrorCode, pos int, lexeme string, err error) *LexError {
	return &LexError{Code: code, Pos: pos, Lexeme: lexeme, Err: err}
}
