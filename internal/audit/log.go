package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/logsweep/logsweep/internal/types"
)

// SweepRecord is one line in the sweep history log.
type SweepRecord struct {
	Timestamp      time.Time      `json:"timestamp"`
	SweepID        string         `json:"sweep_id"`
	Root           string         `json:"root"`
	FilesProcessed map[string]int `json:"files_processed"`
	FilesModified  int            `json:"files_modified"`
	LinesRemoved   int            `json:"lines_removed"`
	DryRun         bool           `json:"dry_run,omitempty"`
	Duration       string         `json:"duration"`
	TopFiles       []FileSummary  `json:"top_files,omitempty"`
}

// FileSummary names a modified file and how many lines it lost.
type FileSummary struct {
	Path    string `json:"path"`
	Removed int    `json:"removed"`
}

type Log struct {
	logPath string
}

func NewLog(root string) *Log {
	gitDir := filepath.Join(root, ".git")
	logPath := filepath.Join(root, ".logsweep_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		logPath = filepath.Join(gitDir, "logsweep_audit.jsonl")
	}
	return &Log{logPath: logPath}
}

// LoadHistory returns past sweep records, most recent first.
func (a *Log) LoadHistory() ([]SweepRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []SweepRecord
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var record SweepRecord
		if err := decoder.Decode(&record); err != nil {
			continue
		}
		records = append(records, record)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// LogSweep appends one record to the history log.
func (a *Log) LogSweep(record SweepRecord) error {
	if record.SweepID == "" {
		record.SweepID = fmt.Sprintf("sweep_%d", time.Now().Unix())
	}

	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// CreateSweepRecord summarizes one finished sweep for the log.
func CreateSweepRecord(root string, sum types.Summary, files []types.FileResult, dryRun bool, duration time.Duration) SweepRecord {
	processed := make(map[string]int, len(sum.FilesProcessed))
	for lang, n := range sum.FilesProcessed {
		processed[string(lang)] = n
	}

	topFiles := make([]FileSummary, 0, 10)
	for _, f := range files {
		if f.Removed == 0 {
			continue
		}
		topFiles = append(topFiles, FileSummary{Path: f.Path, Removed: f.Removed})
		if len(topFiles) >= 10 {
			break
		}
	}

	return SweepRecord{
		Timestamp:      time.Now(),
		Root:           root,
		FilesProcessed: processed,
		FilesModified:  sum.FilesModified,
		LinesRemoved:   sum.LinesRemoved,
		DryRun:         dryRun,
		Duration:       duration.String(),
		TopFiles:       topFiles,
	}
}
