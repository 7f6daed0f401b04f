// Package eval consumes a postfix token stream with an operand stack and
// produces a single result value: a number, a date-time, or a duration.
//
// Values form a sealed union so every (kind, kind) operand combination is
// dispatched explicitly per operator; combinations with no defined meaning
// are TYPE_MISMATCH errors naming both operands, never silent coercions.
//
// The now keyword is resolved through an injected Clock at the moment the
// evaluator processes that token, once per occurrence. Two now tokens in one
// expression may observe different instants.
package eval
