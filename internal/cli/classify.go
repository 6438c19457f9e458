package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/akarpel/filetriage/internal/classify"
	"github.com/akarpel/filetriage/internal/config"
	"github.com/akarpel/filetriage/internal/dataset"
	"github.com/akarpel/filetriage/internal/logging"
	"github.com/akarpel/filetriage/internal/report"
	"github.com/akarpel/filetriage/internal/tui"
	"github.com/akarpel/filetriage/pkg/filetriage"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [project_path]",
	Short: "Classify a filename batch and report statistics",
	Long: `Classify reads a filename list, resolves each name to a category and
processing priority, and prints the batch sorted by priority together
with the distribution statistics.

The project path (default ".") may contain a ` + config.ConfigFileName + ` file and
a .env file; command-line flags override both.

Input resolution order:
  1. --demo (built-in demonstration batch)
  2. -f/--file flag
  3. "input" key in ` + config.ConfigFileName + `
  4. $FILETRIAGE_INPUT (also honored from .env)

Examples:
  # Classify the built-in demonstration batch
  filetriage classify --demo

  # Classify a list file, JSON report to stdout
  filetriage classify -f filenames.txt --output json

  # Use a project directory with filetriage.yaml
  filetriage classify ./inbox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

type classifyFlagValues struct {
	file       string
	output     string
	demo       bool
	noProgress bool
}

var classifyFlags classifyFlagValues

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVarP(&classifyFlags.file, "file", "f", "",
		"Filename list: one name per line, '#' comments and blank lines skipped")
	classifyCmd.Flags().StringVarP(&classifyFlags.output, "output", "o", "",
		"Report format: table|json (default: table)")
	classifyCmd.Flags().BoolVar(&classifyFlags.demo, "demo", false,
		"Classify the built-in demonstration batch instead of reading a list")
	classifyCmd.Flags().BoolVar(&classifyFlags.noProgress, "no-progress", false,
		"Disable the progress display even on a terminal")
}

func runClassify(cmd *cobra.Command, args []string) error {
	startedAt := time.Now()

	projectPath := "."
	if len(args) == 1 {
		projectPath = args[0]
	}

	// Layer .env into the environment before resolving anything.
	_ = godotenv.Load(filepath.Join(projectPath, ".env"))

	cfg, err := config.Load(projectPath)
	if errors.Is(err, config.ErrConfigNotFound) {
		cfg = &config.ProjectConfig{}
	} else if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)

	output := cfg.Output
	if output == "" {
		output = filetriage.OutputTable
	}
	if output != filetriage.OutputTable && output != filetriage.OutputJSON {
		return fmt.Errorf("output must be %q or %q, got %q: %w",
			filetriage.OutputTable, filetriage.OutputJSON, output, filetriage.ErrInvalidConfig)
	}

	verbose := cfg.Verbose || getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	filenames, err := resolveInput(cfg, projectPath)
	if err != nil {
		return err
	}
	logger.Verbose("classifying %d filenames", len(filenames))

	engine := classify.New()
	var records []filetriage.Record
	if output == filetriage.OutputTable && !cfg.NoProgress && tui.IsInteractive() {
		records = tui.RunBatch(engine, filenames)
	} else {
		records = engine.ClassifyBatch(filenames, filetriage.WithProgress(
			func(done, total int, rec filetriage.Record) {
				logger.Verbose("[%d/%d] %s → %s (priority %d)", done, total, rec.Filename, rec.Category, rec.Priority)
			}))
	}

	rep := report.Build(records, startedAt)
	logger.Verbose("run %s finished", rep.RunID)

	switch output {
	case filetriage.OutputJSON:
		data, err := rep.EncodeJSON()
		if err != nil {
			return fmt.Errorf("encoding report: %w", filetriage.ErrOutputFailed)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	default:
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(rep))
	}
	return nil
}

// applyFlagOverrides merges flag values over the project config.
// Precedence: flag > filetriage.yaml > environment.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.ProjectConfig) {
	if cmd.Flags().Changed("file") {
		cfg.Input = classifyFlags.file
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = classifyFlags.output
	}
	if cmd.Flags().Changed("no-progress") {
		cfg.NoProgress = classifyFlags.noProgress
	}
	if cfg.Input == "" {
		cfg.Input = os.Getenv("FILETRIAGE_INPUT")
	}
	if cfg.Output == "" {
		cfg.Output = os.Getenv("FILETRIAGE_OUTPUT")
	}
}

// resolveInput picks the filename source for this run.
func resolveInput(cfg *config.ProjectConfig, projectPath string) ([]string, error) {
	if classifyFlags.demo {
		return dataset.Demonstration(), nil
	}
	if cfg.Input == "" {
		return nil, fmt.Errorf("no filename list: pass --demo, -f/--file, or set input in %s: %w",
			config.ConfigFileName, filetriage.ErrInvalidConfig)
	}

	listPath := cfg.Input
	if !filepath.IsAbs(listPath) {
		listPath = filepath.Join(projectPath, listPath)
	}
	return dataset.LoadList(listPath)
}
