package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpel/filetriage/pkg/filetriage"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	return dir
}

func TestLoad_AllFields(t *testing.T) {
	dir := writeConfig(t, `input: batches/incoming.txt
output: json
no_progress: true
verbose: true
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "batches/incoming.txt", cfg.Input)
	assert.Equal(t, filetriage.OutputJSON, cfg.Output)
	assert.True(t, cfg.NoProgress)
	assert.True(t, cfg.Verbose)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := writeConfig(t, `input: files.txt
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "files.txt", cfg.Input)
	assert.Empty(t, cfg.Output)
	assert.False(t, cfg.NoProgress)
	assert.False(t, cfg.Verbose)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := writeConfig(t, "input: [unclosed\n")

	cfg, err := Load(dir)
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoad_InvalidOutput(t *testing.T) {
	dir := writeConfig(t, `output: xml
`)

	cfg, err := Load(dir)
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, filetriage.ErrInvalidConfig))
}

func TestValidate_AcceptedOutputs(t *testing.T) {
	for _, out := range []string{"", filetriage.OutputTable, filetriage.OutputJSON} {
		cfg := &ProjectConfig{Output: out}
		assert.NoError(t, cfg.Validate(), "output %q", out)
	}
}
