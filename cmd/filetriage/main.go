package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/akarpel/filetriage/internal/cli"
	"github.com/akarpel/filetriage/pkg/filetriage"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(filetriage.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(filetriage.ExitCodeForError(err))
	}
}
