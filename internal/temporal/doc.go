// Package temporal provides the two time-valued primitives of the
// calculator: zone-less DateTime parsing/formatting and millisecond-normalized
// Durations parsed from ISO-8601 duration strings.
//
// This package contains value types and parsing only. All other internal
// packages import temporal; temporal imports nothing internal.
//
// Normalization policy (observable in results, so fixed here):
//   - Every Duration is converted to a whole number of milliseconds at
//     construction time. Calendar units use the period library's fixed
//     approximation: a day is 24 hours, a year is 365.2425 days, a month is
//     one twelfth of a year.
//   - Scaling and division round to the nearest whole millisecond, ties away
//     from zero.
//   - Canonical rendering decomposes the millisecond count with days as the
//     largest unit and seconds (with millisecond fraction) as the smallest.
package temporal
