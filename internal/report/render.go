package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/logsweep/logsweep/internal/types"
)

type PrintOptions struct {
	NoColor  bool
	DryRun   bool
	Duration time.Duration
}

// PrintFile writes the per-file progress line for a modified or failed file.
func PrintFile(w io.Writer, fr types.FileResult, opts PrintOptions) {
	if fr.Err != "" {
		fmt.Fprintf(w, "  %s %s: %s\n", mark("✗", "31", opts.NoColor), fr.Path, fr.Err)
		return
	}
	verb := "removed"
	if opts.DryRun {
		verb = "would remove"
	}
	fmt.Fprintf(w, "  %s %s %d debug line(s) from %s\n", mark("✓", "32", opts.NoColor), verb, fr.Removed, fr.Path)
}

// PrintSummary renders the final per-language table and totals.
func PrintSummary(w io.Writer, sum types.Summary, files []types.FileResult, opts PrintOptions) {
	removedBy := map[types.Language]int{}
	for _, f := range files {
		removedBy[f.Language] += f.Removed
	}

	fmt.Fprintln(w)
	table := tablewriter.NewWriter(w)
	table.Header("Language", "Files scanned", "Lines removed")
	for _, lang := range []types.Language{types.LangDart, types.LangSwift} {
		table.Append([]string{
			string(lang),
			fmt.Sprintf("%d", sum.FilesProcessed[lang]),
			fmt.Sprintf("%d", removedBy[lang]),
		})
	}
	_ = table.Render()

	fmt.Fprintf(w, "Files modified: %d\n", sum.FilesModified)
	fmt.Fprintf(w, "Total debug lines removed: %d\n", sum.LinesRemoved)
	if sum.FilesFailed > 0 {
		fmt.Fprintf(w, "Files skipped on error: %d\n", sum.FilesFailed)
	}
	if sum.CacheHits > 0 {
		fmt.Fprintf(w, "Unchanged files skipped: %d\n", sum.CacheHits)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Sweep duration: %.2fs\n", opts.Duration.Seconds())
	}

	fmt.Fprintln(w)
	if sum.LinesRemoved > 0 {
		if opts.DryRun {
			fmt.Fprintln(w, "Dry run: no files were written.")
		} else {
			fmt.Fprintln(w, "Tip: run 'git diff' to review the changes before committing.")
		}
	} else {
		fmt.Fprintln(w, "No debug statements found to remove.")
	}
}

// PrintJSON emits the summary and per-file results as machine-readable JSON.
func PrintJSON(w io.Writer, sum types.Summary, files []types.FileResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Summary types.Summary      `json:"summary"`
		Files   []types.FileResult `json:"files,omitempty"`
	}{sum, files})
}

func mark(sym, color string, noColor bool) string {
	if noColor {
		return sym
	}
	return "\x1b[" + color + "m" + sym + "\x1b[0m"
}
