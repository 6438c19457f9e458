package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/akarpel/filetriage/pkg/filetriage"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig holds harness settings for a triage run. Category
// rules are deliberately not configurable; the registry is fixed.
type ProjectConfig struct {
	// Input is the filename-list path, relative to the project dir
	// unless absolute.
	Input string `yaml:"input"`

	// Output selects the report rendering: "table" or "json".
	Output string `yaml:"output"`

	// NoProgress disables the progress display even on a terminal.
	NoProgress bool `yaml:"no_progress"`

	// Verbose enables diagnostic logging.
	Verbose bool `yaml:"verbose"`
}

const ConfigFileName = "filetriage.yaml"

// Load reads ConfigFileName from projectPath.
func Load(projectPath string) (*ProjectConfig, error) {
	configPath := filepath.Join(projectPath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values. An empty Output is allowed and means
// the caller's default.
func (c *ProjectConfig) Validate() error {
	switch c.Output {
	case "", filetriage.OutputTable, filetriage.OutputJSON:
		return nil
	}
	return fmt.Errorf("output must be %q or %q, got %q: %w",
		filetriage.OutputTable, filetriage.OutputJSON, c.Output, filetriage.ErrInvalidConfig)
}
