package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akarpel/filetriage/internal/classify"
	"github.com/akarpel/filetriage/pkg/filetriage"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the fixed extension table",
	Long: `Categories prints the fixed extension→category table, ordered by
processing priority. The table is immutable; there is no way to add
or remove entries at runtime. Extensions not listed classify as
Miscellaneous at the lowest priority.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, c := range filetriage.Categories() {
			exts := classify.Extensions(c)
			if len(exts) == 0 {
				fmt.Fprintf(out, "%-15s priority %d  (fallback, everything else)\n", c, c.Priority())
				continue
			}
			fmt.Fprintf(out, "%-15s priority %d  %s\n", c, c.Priority(), strings.Join(exts, ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
