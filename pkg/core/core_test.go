package core

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestClean_Smoke(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "main.dart")
	if err := os.WriteFile(p, []byte("print(\"x\");\nrun();\n"), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := Clean(Config{Root: dir, NoCache: true})
	if err != nil {
		t.Fatalf("Clean error: %v", err)
	}
	if res.Summary.LinesRemoved != 1 {
		t.Fatalf("expected 1 removed line, got %d", res.Summary.LinesRemoved)
	}

	ids := RuleIDs()
	if len(ids) == 0 {
		t.Fatal("expected non-empty rule IDs")
	}
}

func TestMarshalUnmarshalSummary(t *testing.T) {
	sum := Summary{LinesRemoved: 3, FilesModified: 1}
	var buf bytes.Buffer
	if err := MarshalSummary(&buf, sum); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\"lines_removed\": 3") {
		t.Fatalf("json: %s", buf.String())
	}
	got, err := UnmarshalSummary(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.LinesRemoved != 3 || got.FilesModified != 1 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
