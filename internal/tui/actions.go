package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/logsweep/logsweep/internal/types"
)

// summaryText renders a plain-text digest of the pending removals,
// marking files toggled out of the apply set.
func summaryText(files []types.FileResult, deselected map[int]bool) string {
	var b strings.Builder
	total := 0
	for i, f := range files {
		state := "apply"
		if deselected[i] {
			state = "skip"
		} else {
			total += f.Removed
		}
		fmt.Fprintf(&b, "%-5s %s (%d line(s))\n", state, f.Path, f.Removed)
	}
	fmt.Fprintf(&b, "total lines to remove: %d\n", total)
	return b.String()
}

func copySummary(files []types.FileResult, deselected map[int]bool) error {
	return clipboard.WriteAll(summaryText(files, deselected))
}
