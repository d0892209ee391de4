// Package engine implements the sweep: walking the project tree,
// filtering each file's lines against its language rules, and
// rewriting changed files in place.
//
// The filter is a single forward pass. Conditional debug blocks and
// multi-line print calls are consumed by delimiter counting before any
// per-line pattern runs, so no line is matched twice. Delimiters are
// counted anywhere on a line, string literals included; a literal
// brace inside a skipped block will desynchronize the count. This
// mirrors the textual nature of the whole tool and is documented
// rather than corrected.
package engine
