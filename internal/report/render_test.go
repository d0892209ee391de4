package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/logsweep/logsweep/internal/types"
)

func TestPrintFile(t *testing.T) {
	var buf bytes.Buffer
	PrintFile(&buf, types.FileResult{Path: "lib/a.dart", Removed: 3}, PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "removed 3 debug line(s) from lib/a.dart") {
		t.Fatalf("unexpected output: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatal("no-color output must not contain ANSI codes")
	}

	buf.Reset()
	PrintFile(&buf, types.FileResult{Path: "x.swift", Err: "permission denied"}, PrintOptions{NoColor: true})
	if !strings.Contains(buf.String(), "permission denied") {
		t.Fatalf("error line missing: %q", buf.String())
	}
}

func TestPrintSummary(t *testing.T) {
	sum := types.Summary{
		FilesProcessed: map[types.Language]int{types.LangDart: 4, types.LangSwift: 2},
		FilesModified:  1,
		LinesRemoved:   5,
	}
	files := []types.FileResult{{Path: "a.dart", Language: types.LangDart, Removed: 5}}

	var buf bytes.Buffer
	PrintSummary(&buf, sum, files, PrintOptions{NoColor: true})
	out := buf.String()
	for _, want := range []string{"dart", "swift", "Total debug lines removed: 5", "git diff"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSummary_NothingRemoved(t *testing.T) {
	sum := types.Summary{FilesProcessed: map[types.Language]int{}}
	var buf bytes.Buffer
	PrintSummary(&buf, sum, nil, PrintOptions{NoColor: true})
	if !strings.Contains(buf.String(), "No debug statements found") {
		t.Fatalf("expected empty-sweep notice:\n%s", buf.String())
	}
}

func TestPrintJSON(t *testing.T) {
	sum := types.Summary{
		FilesProcessed: map[types.Language]int{types.LangDart: 1},
		LinesRemoved:   2,
	}
	var buf bytes.Buffer
	if err := PrintJSON(&buf, sum, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\"lines_removed\": 2") {
		t.Fatalf("json output: %s", buf.String())
	}
}
