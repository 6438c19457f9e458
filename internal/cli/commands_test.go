package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpel/filetriage/internal/report"
	"github.com/akarpel/filetriage/pkg/filetriage"
)

// executeCommand runs the root command with args and captures output.
// Flag state is reset between runs; cobra commands are package-level
// singletons and would otherwise leak values across tests.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Keep the process environment out of input resolution.
	t.Setenv("FILETRIAGE_INPUT", "")
	t.Setenv("FILETRIAGE_OUTPUT", "")

	classifyFlags = classifyFlagValues{}
	for _, name := range []string{"file", "output", "demo", "no-progress"} {
		f := classifyCmd.Flags().Lookup(name)
		require.NotNil(t, f)
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCategoriesCommand(t *testing.T) {
	out, err := executeCommand(t, "categories")
	require.NoError(t, err)

	assert.Contains(t, out, "Documents")
	assert.Contains(t, out, "pdf")
	assert.Contains(t, out, "SourceCode")
	assert.Contains(t, out, "Miscellaneous")
	assert.Contains(t, out, "fallback")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "filetriage")
}

func TestClassifyCommand_DemoJSON(t *testing.T) {
	out, err := executeCommand(t, "classify", "--demo", "--output", "json")
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))

	assert.NotEqual(t, uuid.Nil, rep.RunID)
	assert.Equal(t, 32, rep.Summary.Total)
	require.Len(t, rep.Records, 32)

	// Records arrive sorted by ascending priority.
	for i := 1; i < len(rep.Records); i++ {
		assert.LessOrEqual(t, rep.Records[i-1].Priority, rep.Records[i].Priority)
	}
	assert.Equal(t, filetriage.CategoryDocuments, rep.Records[0].Category)

	// Bucket counts sum to the total.
	sum := 0
	for _, n := range rep.Summary.ByCategory {
		sum += n
	}
	assert.Equal(t, rep.Summary.Total, sum)
}

func TestClassifyCommand_ListFile(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "files.txt")
	require.NoError(t, os.WriteFile(list, []byte("report.pdf\nsong.mp3\nreadme\n"), 0644))

	out, err := executeCommand(t, "classify", "-f", list, "-o", "json")
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 3, rep.Summary.Total)
	assert.Equal(t, "report.pdf", rep.Records[0].Filename)
}

func TestClassifyCommand_ProjectConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "files.txt"), []byte("a.zip\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "filetriage.yaml"),
		[]byte("input: files.txt\noutput: json\n"), 0644))

	out, err := executeCommand(t, "classify", dir)
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 1, rep.Summary.Total)
	assert.Equal(t, filetriage.CategoryArchive, rep.Records[0].Category)
}

func TestClassifyCommand_NoInput(t *testing.T) {
	_, err := executeCommand(t, "classify", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, filetriage.ErrInvalidConfig))
	assert.Equal(t, filetriage.ExitConfigError, filetriage.ExitCodeForError(err))
}

func TestClassifyCommand_MissingList(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.txt")
	_, err := executeCommand(t, "classify", "-f", missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, filetriage.ErrInputNotFound))
	assert.Equal(t, filetriage.ExitInputError, filetriage.ExitCodeForError(err))
}

func TestClassifyCommand_InvalidOutput(t *testing.T) {
	_, err := executeCommand(t, "classify", "--demo", "-o", "xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, filetriage.ErrInvalidConfig))
}
