// Package cli is the process boundary: it collects the expression argument,
// runs the pipeline, renders the result, and maps any failure to an error
// message and a non-zero exit status. No partial output is produced.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/calvess/dateexpr/internal/eval"
	"github.com/calvess/dateexpr/internal/lexer"
	"github.com/calvess/dateexpr/internal/postfix"
	"github.com/calvess/dateexpr/internal/present"
	"github.com/calvess/dateexpr/internal/token"
)

// RootOptions holds the global flags.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json"
	Locale  string // BCP-47 tag for the presenter
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the dateexpr command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "dateexpr \"<expression>\"",
		Short: "Evaluate arithmetic over numbers, date-times and ISO-8601 durations",
		Long: `Evaluate a single infix expression whose operands may be numbers,
date-time literals (2024-01-01T12:30:00), ISO-8601 durations (P1DT6H),
or the keyword now. Operators + - * / carry type-dependent semantics:
a date-time minus a date-time is a duration, a duration times a number
is a scaled duration, and so on.

Examples:
  dateexpr "2+3*4"
  dateexpr "2024-01-01 + P1DT12H"
  dateexpr "(now - 2024-01-01) / P1D"
  dateexpr --format json "P1D + PT6H"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return WrapExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats), nil)
			}
			if _, err := language.Parse(opts.Locale); err != nil {
				return WrapExitError(ExitCommandError,
					fmt.Sprintf("invalid locale %q", opts.Locale), err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, args[0], cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print token and postfix streams to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.Locale, "locale", "en", "BCP-47 locale for rendering the result")

	return cmd
}

func runEval(opts *RootOptions, expr string, cmd *cobra.Command) error {
	f := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	// Validated in PersistentPreRunE.
	tag := language.MustParse(opts.Locale)

	tokens, err := lexer.Tokenize(expr)
	if err != nil {
		return f.Failure(errorCode(err), err)
	}
	f.Verbosef("tokens:  %s\n", traceLine(tokens))

	post := postfix.Convert(tokens)
	f.Verbosef("postfix: %s\n", traceLine(post))

	value, err := eval.New(eval.RealClock{}).Evaluate(post)
	if err != nil {
		return f.Failure(errorCode(err), err)
	}

	p := present.New(tag)
	return f.Success(Result{
		Kind:      value.Kind().String(),
		Canonical: value.Canonical(),
		Display:   p.Render(value),
	})
}

func traceLine(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// errorCode extracts the machine code for the JSON envelope.
func errorCode(err error) string {
	var le *lexer.LexError
	if errors.As(err, &le) {
		return string(le.Code)
	}
	var ee *eval.EvalError
	if errors.As(err, &ee) {
		return string(ee.Code)
	}
	return "UNKNOWN"
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Execute runs the root command and returns the process exit code. Errors
// already written by the output formatter are not printed again.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if !IsReported(err) {
			fmt.Fprintln(os.Stderr, "dateexpr:", err)
		}
		return GetExitCode(err)
	}
	return ExitSuccess
}
