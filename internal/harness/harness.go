package harness

import (
	"errors"
	"fmt"

	"github.com/calvess/dateexpr/internal/eval"
	"github.com/calvess/dateexpr/internal/lexer"
	"github.com/calvess/dateexpr/internal/postfix"
	"github.com/calvess/dateexpr/internal/testutil"
	"github.com/calvess/dateexpr/internal/token"
)

// Pipeline stages recorded in traces.
const (
	StageLex  = "lex"
	StageEval = "eval"
)

// Trace captures one scenario execution for golden comparison. Token and
// postfix streams use the tokens' canonical trace strings, so a trace is
// deterministic whenever the scenario pins its clock.
type Trace struct {
	Scenario string       `json:"scenario"`
	Expr     string       `json:"expr"`
	Tokens   []string     `json:"tokens,omitempty"`
	Postfix  []string     `json:"postfix,omitempty"`
	Result   *TraceResult `json:"result,omitempty"`
	Error    *TraceError  `json:"error,omitempty"`
}

// TraceResult is the successful outcome of a trace.
type TraceResult struct {
	Kind      string `json:"kind"`
	Canonical string `json:"canonical"`
}

// TraceError is the failure outcome of a trace. Only the stage and machine
// code are recorded; message wording stays out of golden files.
type TraceError struct {
	Stage string `json:"stage"`
	Code  string `json:"code"`
}

// Execute runs one scenario through the pipeline. Pipeline failures are
// recorded in the trace; the returned error reports only harness misuse
// (an unparseable clock literal).
func Execute(sc Scenario) (*Trace, error) {
	tr := &Trace{Scenario: sc.Name, Expr: sc.Expr}

	var clock eval.Clock = eval.RealClock{}
	if sc.Clock != "" {
		fixed, err := testutil.ClockAt(sc.Clock)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		clock = fixed
	}

	tokens, err := lexer.Tokenize(sc.Expr)
	if err != nil {
		tr.Error = &TraceError{Stage: StageLex, Code: errorCode(err)}
		return tr, nil
	}
	tr.Tokens = traceStrings(tokens)

	post := postfix.Convert(tokens)
	tr.Postfix = traceStrings(post)

	result, err := eval.New(clock).Evaluate(post)
	if err != nil {
		tr.Error = &TraceError{Stage: StageEval, Code: errorCode(err)}
		return tr, nil
	}
	tr.Result = &TraceResult{Kind: result.Kind().String(), Canonical: result.Canonical()}
	return tr, nil
}

func traceStrings(tokens []token.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.String()
	}
	return out
}

// errorCode extracts the machine code from a pipeline error.
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
