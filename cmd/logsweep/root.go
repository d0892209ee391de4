package logsweep

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON            bool
	flagNoColor         bool
	flagDryRun          bool
	flagNoCache         bool
	flagDefaultExcludes bool
	flagNoUpdateCheck   bool
	flagSelfUpdate      bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the logsweep CLI. Invoked with
// just an optional path it behaves like the clean command, so
// "logsweep [path]" remains the whole required surface.
var rootCmd = &cobra.Command{
	Use:           "logsweep [path]",
	Short:         "Strip debug logging from Dart and Swift sources",
	Long:          "logsweep sweeps a project tree and removes leftover print/NSLog/os_log statements and conditional debug blocks before a production build.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runClean,
}

// Execute runs the logsweep CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON summary")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "report removals without rewriting files")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "disable the clean-file cache")
	rootCmd.PersistentFlags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "apply built-in exclude list (build, Pods, generated sources, etc.)")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
	rootCmd.PersistentFlags().BoolVar(&flagSelfUpdate, "self-update", false, "update logsweep to the latest release")
}
