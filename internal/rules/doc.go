// Package rules defines the per-language debug-logging patterns that
// logsweep removes. Each language contributes an ordered list of
// anchored line patterns plus the shape of its multi-line debug block.
//
// Pattern matching is purely textual: a lookalike inside a string
// literal or comment will match. That is a known limitation of a
// line-oriented sweep, not something the rules try to correct.
package rules
