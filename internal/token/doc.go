// Package token defines the closed set of lexical units shared by the
// tokenizer, the infix-to-postfix converter, and the evaluator.
//
// This package contains type definitions only. Everything downstream of the
// tokenizer imports token; token imports only temporal.
package token
