package engine

import (
	"io/fs"
	"os"
	"strings"

	"github.com/logsweep/logsweep/internal/rules"
	"github.com/logsweep/logsweep/internal/types"
)

// RewriteFile filters one file's content and, when lines were removed
// and dryRun is false, writes the result back over the original. Read
// and write failures are recorded on the result rather than returned;
// a failed file counts zero removals so the sweep can continue.
func RewriteFile(path, rel string, data []byte, set rules.Set, dryRun bool) types.FileResult {
	res := types.FileResult{Path: rel, Language: set.Language}

	lines := splitLines(data)
	kept, removed := FilterLines(rel, lines, set)
	if len(removed) == 0 {
		return res
	}

	if !dryRun {
		mode := fs.FileMode(0644)
		if info, err := os.Stat(path); err == nil {
			mode = info.Mode().Perm()
		}
		if err := os.WriteFile(path, []byte(strings.Join(kept, "")), mode); err != nil {
			res.Err = err.Error()
			return res
		}
	}

	res.Removed = len(removed)
	res.Removals = removed
	return res
}

// splitLines splits content into lines that keep their terminators, so
// the surviving lines can be written back byte for byte.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
