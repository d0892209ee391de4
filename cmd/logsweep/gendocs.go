package logsweep

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/logsweep/logsweep/internal/rules"
)

// gendocs regenerates the removal-rules section in README.md between
// the markers <!-- BEGIN:RULES --> and <!-- END:RULES -->.
func init() {
	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Regenerate README rules section",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := "README.md"
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			start := []byte("<!-- BEGIN:RULES -->")
			end := []byte("<!-- END:RULES -->")
			i := bytes.Index(b, start)
			j := bytes.Index(b, end)
			if i < 0 || j < 0 || j <= i {
				return fmt.Errorf("markers not found in README.md")
			}

			var out strings.Builder
			out.WriteString("\nRemoval rules per language (run `logsweep rules` for the patterns):\n\n")
			for _, set := range rules.All() {
				out.WriteString("- " + string(set.Language) + " (`" + set.Extension + "`):\n")
				var ids []string
				for _, r := range set.Lines {
					ids = append(ids, r.ID)
				}
				ids = append(ids, string(set.Language)+"_debug_block")
				out.WriteString("  - " + strings.Join(ids, ", ") + "\n")
			}

			var nb bytes.Buffer
			nb.Write(b[:i])
			nb.Write(start)
			nb.WriteString("\n")
			nb.WriteString(out.String())
			nb.Write(end)
			nb.Write(b[j+len(end):])
			return os.WriteFile(path, nb.Bytes(), 0644)
		},
	}
	rootCmd.AddCommand(cmd)
}
