package core_test

import (
	"fmt"
	"os"

	"github.com/logsweep/logsweep/pkg/core"
)

// ExampleClean demonstrates a dry-run sweep of a project tree.
func ExampleClean() {
	// 1. Configure the sweep
	cfg := core.Config{
		Root:            ".",
		DryRun:          true, // report removals without writing
		DefaultExcludes: true, // skip build/, Pods/, generated sources
	}

	// 2. Run it
	res, err := core.Clean(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sweep failed: %v\n", err)
		return
	}

	// 3. Inspect the outcome
	if res.Summary.LinesRemoved == 0 {
		fmt.Println("No debug statements found.")
	} else {
		fmt.Printf("Would remove %d line(s) across %d file(s).\n",
			res.Summary.LinesRemoved, res.Summary.FilesModified)
		_ = core.MarshalSummary(os.Stdout, res.Summary)
	}
}
