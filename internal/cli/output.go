package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Exit codes.
const (
	ExitSuccess      = 0 // successful evaluation
	ExitFailure      = 1 // lex or evaluation failure
	ExitCommandError = 2 // command error (bad flags, bad locale)
)

// ExitError carries a specific exit code up to main. Reported marks errors
// whose message the formatter already wrote, so main does not print twice.
type ExitError struct {
	Code     int
	Message  string
	Err      error
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// IsReported reports whether the error's message was already written.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// OutputFormatter handles JSON vs text output.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // diagnostic channel for verbose output
	Verbose   bool

	// TraceID correlates JSON responses. Generated when left empty.
	TraceID string
}

// Response is the JSON envelope for command output.
type Response struct {
	Status  string         `json:"status"` // "ok" or "error"
	Data    any            `json:"data,omitempty"`
	Error   *ResponseError `json:"error,omitempty"`
	TraceID string         `json:"trace_id,omitempty"`
}

// ResponseError is the error structure inside a Response.
type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is the success payload for an evaluation.
type Result struct {
	Kind      string `json:"kind"`
	Canonical string `json:"canonical"`
	Display   string `json:"display"`
}

// Success writes a successful result in the configured format. Text mode
// prints only the display line.
func (f *OutputFormatter) Success(result Result) error {
	if f.Format == "json" {
		return f.writeJSON(Response{Status: "ok", Data: result, TraceID: f.traceID()})
	}
	_, err := fmt.Fprintln(f.Writer, result.Display)
	return err
}

// Failure writes the error in the configured format and returns an ExitError
// carrying the failing status, marked as already reported.
func (f *OutputFormatter) Failure(code string, err error) error {
	if f.Format == "json" {
		resp := Response{
			Status:  "error",
			Error:   &ResponseError{Code: code, Message: err.Error()},
			TraceID: f.traceID(),
		}
		if werr := f.writeJSON(resp); werr != nil {
			return werr
		}
	} else {
		fmt.Fprintln(f.errWriter(), "error:", err)
	}
	return &ExitError{Code: ExitFailure, Message: err.Error(), Err: err, Reported: true}
}

// Verbosef writes diagnostics to the error channel when verbose is on.
func (f *OutputFormatter) Verbosef(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.errWriter(), format, args...)
}

func (f *OutputFormatter) writeJSON(resp Response) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func (f *OutputFormatter) errWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

func (f *OutputFormatter) traceID() string {
	if f.TraceID == "" {
		f.TraceID = uuid.NewString()
	}
	return f.TraceID
}
