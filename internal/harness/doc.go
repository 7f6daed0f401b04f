// Package harness runs conformance scenarios through the full pipeline:
// tokenize, convert to postfix, evaluate.
//
// Scenarios live in YAML files under testdata. Each one names an expression
// and either the expected result (kind + canonical form) or the expected
// failure (stage + error code). Scenario executions also produce trace
// snapshots (token stream, postfix stream, outcome) that are pinned with
// golden files, so any drift in lexing, conversion order, or result
// rendering shows up as a diff.
//
// Expressions that use the now keyword must pin the clock via the scenario's
// clock field; traces are otherwise nondeterministic.
package harness
