package logsweep

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/logsweep/logsweep/internal/audit"
	"github.com/logsweep/logsweep/internal/config"
	"github.com/logsweep/logsweep/internal/engine"
	"github.com/logsweep/logsweep/internal/report"
	"github.com/logsweep/logsweep/internal/tui"
	"github.com/logsweep/logsweep/internal/types"
	"github.com/logsweep/logsweep/internal/update"
)

var (
	flagInclude  string
	flagExclude  string
	flagMaxBytes int64
	flagReview   bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "clean [path]",
		Short: "Sweep the tree and remove debug statements in place",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runClean,
	}
	rootCmd.AddCommand(cmd)

	// the bare "logsweep [path]" form takes the same flags
	for _, c := range []*cobra.Command{cmd, rootCmd} {
		c.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
		c.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
		c.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
		c.Flags().BoolVar(&flagReview, "review", false, "review pending removals interactively before applying")
	}
}

func runClean(_ *cobra.Command, args []string) error {
	if flagSelfUpdate {
		if err := selfUpdate(); err != nil {
			fmt.Fprintln(os.Stderr, "self-update failed:", err)
		}
		return nil
	}

	root := resolveRoot(args)

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(root); err == nil {
		lcfg = c
	}

	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		noColor = true
	}
	opts := report.PrintOptions{NoColor: noColor, DryRun: flagDryRun}

	cfg := engine.Config{
		Root:            root,
		IncludeGlobs:    pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:    pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:        pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		DryRun:          flagDryRun,
		NoCache:         pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache),
		DefaultExcludes: pickBool(flagDefaultExcludes, lcfg.DefaultExcludes, gcfg.DefaultExcludes),
	}

	if flagReview {
		return runReview(cfg, opts)
	}

	fmt.Printf("Sweeping %s\n", root)
	if !flagJSON {
		cfg.Progress = func(fr types.FileResult) {
			report.PrintFile(os.Stdout, fr, opts)
		}
	}

	res, err := engine.Clean(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return nil
	}
	finish(cfg, res, opts)
	return nil
}

func runReview(cfg engine.Config, opts report.PrintOptions) error {
	dry := cfg
	dry.DryRun = true
	dry.Progress = nil
	res, err := engine.Clean(dry)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return nil
	}

	var pending []types.FileResult
	for _, f := range res.Files {
		if f.Removed > 0 {
			pending = append(pending, f)
		}
	}
	if len(pending) == 0 {
		report.PrintSummary(os.Stdout, res.Summary, nil, opts)
		return nil
	}

	approved, err := tui.Run(pending)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return nil
	}
	if len(approved) == 0 {
		fmt.Println("Review cancelled; no files were changed.")
		return nil
	}

	applied, err := engine.ApplyPaths(cfg, approved)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return nil
	}
	finish(cfg, applied, opts)
	return nil
}

// finish prints the summary, records the sweep, and nags about updates.
// The process exits zero regardless of per-file failures.
func finish(cfg engine.Config, res engine.Result, opts report.PrintOptions) {
	opts.Duration = res.Duration
	if flagJSON {
		_ = report.PrintJSON(os.Stdout, res.Summary, res.Files)
	} else {
		report.PrintSummary(os.Stdout, res.Summary, res.Files, opts)
	}

	if !cfg.DryRun {
		rec := audit.CreateSweepRecord(cfg.Root, res.Summary, res.Files, cfg.DryRun, res.Duration)
		_ = audit.NewLog(cfg.Root).LogSweep(rec)
	}

	if !flagJSON {
		if latest, newer, _ := update.Check(version, flagNoUpdateCheck); newer {
			fmt.Fprintf(os.Stderr, "logsweep %s is available (current %s); run with --self-update to upgrade\n", latest, version)
		}
	}
}

// resolveRoot picks the scan root: the positional argument when given,
// otherwise the directory containing the logsweep binary.
func resolveRoot(args []string) string {
	if len(args) > 0 {
		abs, err := filepath.Abs(args[0])
		if err == nil {
			return abs
		}
		return args[0]
	}
	if exe, err := os.Executable(); err == nil {
		return filepath.Dir(exe)
	}
	return "."
}
