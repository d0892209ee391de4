package rules

import (
	"regexp"

	"github.com/logsweep/logsweep/internal/types"
)

var (
	reSwiftPrint          = regexp.MustCompile(`^\s*print\s*\(.*\)\s*$`)
	reSwiftNSLog          = regexp.MustCompile(`^\s*NSLog\s*\(.*\)\s*$`)
	reSwiftOSLog          = regexp.MustCompile(`^\s*os_log\s*\(.*\)\s*$`)
	reSwiftCommentedPrint = regexp.MustCompile(`^\s*//\s*print\s*\(.*\)\s*$`)

	reSwiftDebugBlock = regexp.MustCompile(`^\s*#if\s+DEBUG\s*$`)
	reSwiftDebugEnd   = regexp.MustCompile(`^\s*#endif\s*$`)
	reSwiftCallStart  = regexp.MustCompile(`^\s*print\s*\(`)
)

// Swift returns the rule set for Swift sources. #if DEBUG blocks run
// until the first #endif line; a print( that does not close with ")"
// on the same line is consumed by parenthesis counting.
func Swift() Set {
	return Set{
		Language:  types.LangSwift,
		Extension: "*.swift",
		Lines: []LineRule{
			{ID: "swift_print", Re: reSwiftPrint},
			{ID: "swift_nslog", Re: reSwiftNSLog},
			{ID: "swift_os_log", Re: reSwiftOSLog},
			{ID: "swift_commented_print", Re: reSwiftCommentedPrint},
		},
		BlockStart: reSwiftDebugBlock,
		BlockMode:  Terminated,
		BlockEnd:   reSwiftDebugEnd,
		CallStart:  reSwiftCallStart,
		CallTerm:   ")",
	}
}
