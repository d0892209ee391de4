package rules

import (
	"regexp"

	"github.com/logsweep/logsweep/internal/types"
)

var (
	reDartPrint        = regexp.MustCompile(`^\s*print\s*\(.*\)\s*;\s*$`)
	reDartDebugPrint   = regexp.MustCompile(`^\s*debugPrint\s*\(.*\)\s*;\s*$`)
	reDartDeveloperLog = regexp.MustCompile(`^\s*developer\.log\s*\(.*\)\s*;\s*$`)
	reDartDebugSingle  = regexp.MustCompile(`^\s*if\s*\(\s*kDebugMode\s*\)\s*print\s*\(.*\)\s*;\s*$`)

	reDartDebugBlock = regexp.MustCompile(`^\s*if\s*\(\s*kDebugMode\s*\)\s*\{\s*$`)
	reDartCallStart  = regexp.MustCompile(`^\s*print\s*\(`)
)

// Dart returns the rule set for Dart sources. Multi-line debug blocks
// open with "if (kDebugMode) {" and close when brace nesting balances;
// a print( that does not close with ");" on the same line is consumed
// by parenthesis counting.
func Dart() Set {
	return Set{
		Language:  types.LangDart,
		Extension: "*.dart",
		Lines: []LineRule{
			{ID: "dart_print", Re: reDartPrint},
			{ID: "dart_debug_print", Re: reDartDebugPrint},
			{ID: "dart_developer_log", Re: reDartDeveloperLog},
			{ID: "dart_kdebug_print", Re: reDartDebugSingle},
		},
		BlockStart: reDartDebugBlock,
		BlockMode:  BraceCounted,
		CallStart:  reDartCallStart,
		CallTerm:   ");",
	}
}
