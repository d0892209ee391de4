package audit

import (
	"testing"
	"time"

	"github.com/logsweep/logsweep/internal/types"
)

func TestLogSweepRoundTrip(t *testing.T) {
	dir := t.TempDir()
	a := NewLog(dir)

	sum := types.Summary{
		FilesProcessed: map[types.Language]int{types.LangDart: 3},
		FilesModified:  1,
		LinesRemoved:   4,
	}
	files := []types.FileResult{{Path: "lib/a.dart", Language: types.LangDart, Removed: 4}}

	rec := CreateSweepRecord(dir, sum, files, false, 120*time.Millisecond)
	if err := a.LogSweep(rec); err != nil {
		t.Fatalf("log sweep: %v", err)
	}
	if err := a.LogSweep(CreateSweepRecord(dir, sum, nil, true, time.Millisecond)); err != nil {
		t.Fatal(err)
	}

	records, err := a.LoadHistory()
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// most recent first
	if !records[0].DryRun {
		t.Fatal("expected newest record first")
	}
	if records[1].LinesRemoved != 4 || records[1].FilesProcessed["dart"] != 3 {
		t.Fatalf("unexpected record: %+v", records[1])
	}
	if len(records[1].TopFiles) != 1 || records[1].TopFiles[0].Path != "lib/a.dart" {
		t.Fatalf("top files: %+v", records[1].TopFiles)
	}
}
