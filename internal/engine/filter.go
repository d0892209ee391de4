package engine

import (
	"strings"

	"github.com/logsweep/logsweep/internal/rules"
	"github.com/logsweep/logsweep/internal/types"
)

// FilterLines runs a single forward pass over lines and drops debug
// statements and blocks per the language rule set. Lines carry their
// original terminators and surviving lines keep their relative order.
// Each line is examined at most once: a block skip consumes its lines
// without re-offering them to the per-line patterns.
func FilterLines(path string, lines []string, set rules.Set) (kept []string, removed []types.Removal) {
	i := 0
	for i < len(lines) {
		line := lines[i]

		// Conditional debug block: the opener and every line through the
		// block end are discarded.
		if set.BlockStart != nil && set.BlockStart.MatchString(line) {
			i = skipBlock(path, lines, i, set, &removed)
			continue
		}

		// Multi-line print call: an opener that does not complete on its
		// own line is consumed by parenthesis counting.
		if set.CallStart != nil && set.CallStart.MatchString(line) &&
			!strings.HasSuffix(strings.TrimRight(line, " \t\r\n"), set.CallTerm) {
			i = skipCall(path, lines, i, &removed)
			continue
		}

		if id, ok := matchLine(set, line); ok {
			removed = append(removed, types.Removal{
				Path: path, Line: i + 1, Text: chomp(line), Kind: types.KindStatement, Rule: id,
			})
			i++
			continue
		}

		kept = append(kept, line)
		i++
	}
	return kept, removed
}

// skipBlock consumes a debug block starting at lines[i] and returns the
// index of the first line after it. A block whose end is never found
// consumes the remainder of the input.
func skipBlock(path string, lines []string, i int, set rules.Set, removed *[]types.Removal) int {
	drop := func(idx int) {
		*removed = append(*removed, types.Removal{
			Path: path, Line: idx + 1, Text: chomp(lines[idx]), Kind: types.KindBlock,
		})
	}
	drop(i)
	i++
	switch set.BlockMode {
	case rules.BraceCounted:
		// The opener contributed one unmatched "{". Delimiters are counted
		// anywhere on the line, string literals included.
		depth := 1
		for i < len(lines) && depth > 0 {
			depth += strings.Count(lines[i], "{") - strings.Count(lines[i], "}")
			drop(i)
			i++
		}
	case rules.Terminated:
		for i < len(lines) {
			end := set.BlockEnd.MatchString(lines[i])
			drop(i)
			i++
			if end {
				break
			}
		}
	}
	return i
}

// skipCall consumes a parenthesis-balanced call expression starting at
// lines[i] and returns the index of the first line after it.
func skipCall(path string, lines []string, i int, removed *[]types.Removal) int {
	drop := func(idx int) {
		*removed = append(*removed, types.Removal{
			Path: path, Line: idx + 1, Text: chomp(lines[idx]), Kind: types.KindCall,
		})
	}
	depth := strings.Count(lines[i], "(") - strings.Count(lines[i], ")")
	drop(i)
	i++
	for i < len(lines) && depth > 0 {
		depth += strings.Count(lines[i], "(") - strings.Count(lines[i], ")")
		drop(i)
		i++
	}
	return i
}

func matchLine(set rules.Set, line string) (string, bool) {
	for _, r := range set.Lines {
		if r.Re.MatchString(line) {
			return r.ID, true
		}
	}
	return "", false
}

func chomp(line string) string {
	return strings.TrimRight(line, "\r\n")
}
