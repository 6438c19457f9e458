package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/akarpel/filetriage/pkg/filetriage"
)

// Both implementations must satisfy the public Logger contract.
var (
	_ filetriage.Logger = (*ConsoleLogger)(nil)
	_ filetriage.Logger = (*NullLogger)(nil)
)

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, true)

	logger.Verbose("test message: %s", "value")

	got := buf.String()
	if !strings.Contains(got, "[VERBOSE] test message: value") {
		t.Errorf("output = %q, want verbose message", got)
	}
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, false)

	logger.Verbose("should not appear")

	if buf.Len() != 0 {
		t.Errorf("output = %q, want none", buf.String())
	}
}

func TestConsoleLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, false)

	logger.Info("classified %d files", 31)

	got := buf.String()
	if got != "classified 31 files\n" {
		t.Errorf("output = %q, want plain info line", got)
	}
}

func TestConsoleLogger_Info_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, false)

	// A format-free call must pass the message through untouched.
	logger.Info("progress at 100%")

	if got := buf.String(); got != "progress at 100%\n" {
		t.Errorf("output = %q", got)
	}
}

func TestConsoleLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, false)

	logger.Error("boom: %v", "reason")

	if got := buf.String(); !strings.Contains(got, "[ERROR] boom: reason") {
		t.Errorf("output = %q, want error prefix", got)
	}
}

func TestConsoleLogger_ConcurrentUse(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("line")
			logger.Verbose("line")
			logger.Error("line")
		}()
	}
	wg.Wait()

	if got := len(strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")); got != 60 {
		t.Errorf("got %d lines, want 60 intact lines", got)
	}
}

func TestNullLogger_DiscardsEverything(t *testing.T) {
	logger := NewNullLogger()
	logger.Verbose("v")
	logger.Info("i")
	logger.Error("e")
	// Nothing to assert beyond not panicking; NullLogger has no sink.
}
