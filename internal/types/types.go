package types

// Language identifies one of the source languages logsweep understands.
type Language string

const (
	LangDart  Language = "dart"
	LangSwift Language = "swift"
)

// RemovalKind classifies how a line was removed.
type RemovalKind string

const (
	// KindStatement is a single-line debug call matched by an anchored pattern.
	KindStatement RemovalKind = "statement"
	// KindBlock is a line consumed as part of a conditional debug block
	// (if (kDebugMode) { ... } or #if DEBUG ... #endif).
	KindBlock RemovalKind = "block"
	// KindCall is a line consumed as part of a multi-line print call.
	KindCall RemovalKind = "call"
)

// Removal describes one line removed from a source file. Line is the
// 1-based line number in the original file, Text the raw line without
// its terminator.
type Removal struct {
	Path string      `json:"path"`
	Line int         `json:"line"`
	Text string      `json:"text"`
	Kind RemovalKind `json:"kind"`
	Rule string      `json:"rule,omitempty"` // rule ID for statement removals
}

// FileResult is the outcome of sweeping a single file.
type FileResult struct {
	Path     string    `json:"path"`
	Language Language  `json:"language"`
	Removed  int       `json:"removed"`
	Removals []Removal `json:"removals,omitempty"`
	// Err holds the read or write failure message, if any. A failed file
	// counts zero removals and does not stop the sweep.
	Err string `json:"error,omitempty"`
}

// Summary aggregates counters for one sweep.
type Summary struct {
	FilesProcessed map[Language]int `json:"files_processed"`
	FilesModified  int              `json:"files_modified"`
	FilesFailed    int              `json:"files_failed,omitempty"`
	LinesRemoved   int              `json:"lines_removed"`
	CacheHits      int              `json:"cache_hits,omitempty"`
}
