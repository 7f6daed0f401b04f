package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines one conformance case: an expression plus either its
// expected result or its expected failure.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario pins down.
	Description string `yaml:"description,omitempty"`

	// Expr is the expression under test, passed to the tokenizer verbatim.
	Expr string `yaml:"expr"`

	// Clock pins the instant reported for the now keyword, in canonical
	// date-time form. Required for deterministic traces when Expr uses now.
	Clock string `yaml:"clock,omitempty"`

	// Expect describes the successful outcome. Exactly one of Expect and
	// Error must be set.
	Expect *ExpectClause `yaml:"expect,omitempty"`

	// Error describes the expected failure.
	Error *ErrorClause `yaml:"error,omitempty"`
}

// ExpectClause is the expected result of a successful evaluation.
type ExpectClause struct {
	// Kind is the result kind: "number", "date-time", or "duration".
	Kind string `yaml:"kind"`

	// Canonical is the result's canonical string form.
	Canonical string `yaml:"canonical"`
}

// ErrorClause is the expected failure of a scenario.
type ErrorClause struct {
	// Stage is the pipeline stage that fails: "lex" or "eval".
	Stage string `yaml:"stage"`

	// Code is the error code, e.g. "TYPE_MISMATCH".
	Code string `yaml:"code"`
}

// LoadScenarios reads a YAML scenario list and validates it.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenarios: %w", err)
	}
	var scenarios []Scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("parsing scenarios %s: %w", path, err)
	}

	seen := make(map[string]bool, len(scenarios))
	for i, sc := range scenarios {
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %d (%q): %w", i, sc.Name, err)
		}
		if seen[sc.Name] {
			return nil, fmt.Errorf("duplicate scenario name %q", sc.Name)
		}
		seen[sc.Name] = true
	}
	return scenarios, nil
}

// Validate checks structural requirements on a single scenario.
func (sc Scenario) Validate() error {
	if sc.Name == "" {
		return fmt.Errorf("name is required")
	}
	if sc.Expr == "" {
		return fmt.Errorf("expr is required")
	}
	if (sc.Expect == nil) == (sc.Error == nil) {
		return fmt.Errorf("exactly one of expect and error must be set")
	}
	if sc.Error != nil && sc.Error.Stage != StageLex && sc.Error.Stage != StageEval {
		return fmt.Errorf("error stage must be %q or %q, got %q", StageLex, StageEval, sc.Error.Stage)
	}
	return nil
}
