package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "filetriage",
	Short: "Classify filename batches by extension and priority",
	Long: `filetriage classifies a batch of filenames into categories (documents,
multimedia, audio, video, archives, source code) by file extension,
assigns each file a processing priority, and reports distribution
statistics.

The category table is fixed. Priorities derive from the category
alone, and every filename classifies successfully: unknown extensions
land in Miscellaneous at the lowest priority.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or flag combination
  11 - Filename list could not be read
  12 - Report could not be encoded or written`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
