// Package core provides a small, stable facade over logsweep's internal
// engine for external integrations. It deliberately re-exports a narrow
// API surface so build tooling can depend on a stable import path
// without exposing internal implementation packages.
//
// Example:
//
//	cfg := core.Config{Root: ".", DryRun: true}
//	res, err := core.Clean(cfg)
//	if err != nil { /* handle */ }
//	_ = core.MarshalSummary(os.Stdout, res.Summary)
package core
