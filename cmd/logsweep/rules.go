package logsweep

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logsweep/logsweep/internal/rules"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List built-in removal rules",
		Run: func(_ *cobra.Command, _ []string) {
			for _, set := range rules.All() {
				fmt.Printf("%s (%s)\n", set.Language, set.Extension)
				for _, r := range set.Lines {
					fmt.Printf("  %-24s %s\n", r.ID, r.Re.String())
				}
				fmt.Printf("  %-24s %s\n", string(set.Language)+"_debug_block", set.BlockStart.String())
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
