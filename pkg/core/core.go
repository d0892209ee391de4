package core

import (
	"github.com/logsweep/logsweep/internal/engine"
	"github.com/logsweep/logsweep/internal/rules"
	"github.com/logsweep/logsweep/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = engine.Config
type Result = engine.Result
type Summary = types.Summary
type FileResult = types.FileResult
type Removal = types.Removal

// Clean is the stable entrypoint for other programs. It sweeps the
// configured root and rewrites files in place unless cfg.DryRun is set.
func Clean(cfg Config) (Result, error) {
	return engine.Clean(cfg)
}

// RuleIDs returns the list of built-in line-rule IDs.
// This is exposed for convenience to avoid importing internals directly.
func RuleIDs() []string { return rules.IDs() }
