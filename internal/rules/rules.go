package rules

import (
	"regexp"

	"github.com/logsweep/logsweep/internal/types"
)

// BlockMode selects how a debug block is terminated.
type BlockMode int

const (
	// BraceCounted blocks end when the {}-nesting count returns to zero.
	BraceCounted BlockMode = iota
	// Terminated blocks end at the first line matching BlockEnd.
	Terminated
)

// LineRule is an anchored single-line pattern. A matching line is
// removed outright.
type LineRule struct {
	ID string
	Re *regexp.Regexp
}

// Set holds all removal rules for one language.
type Set struct {
	Language  types.Language
	Extension string // base-name glob, e.g. "*.dart"

	// Lines are tried in order against each line not consumed by a block.
	Lines []LineRule

	// BlockStart opens a conditional debug block removed wholesale.
	BlockStart *regexp.Regexp
	BlockMode  BlockMode
	BlockEnd   *regexp.Regexp // Terminated mode only

	// CallStart opens a print call that may span lines. A line matching
	// CallStart that does not already end with CallTerm starts a
	// parenthesis-counted skip.
	CallStart *regexp.Regexp
	CallTerm  string
}

// All returns the rule sets in sweep order.
func All() []Set {
	return []Set{Dart(), Swift()}
}

// ForExtension returns the rule set whose extension glob is ext,
// e.g. ".dart". The second result is false when no language claims it.
func ForExtension(ext string) (Set, bool) {
	for _, s := range All() {
		if s.Extension == "*"+ext {
			return s, true
		}
	}
	return Set{}, false
}

// IDs lists every line-rule ID, in sweep order.
func IDs() []string {
	var out []string
	for _, s := range All() {
		for _, r := range s.Lines {
			out = append(out, r.ID)
		}
	}
	return out
}
