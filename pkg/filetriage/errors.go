package filetriage

import "errors"

// Sentinel errors for harness-boundary failures.
// The classification engine itself is total and never fails: every
// filename, however malformed, maps to a valid Record. Errors exist
// only where the harness touches the outside world (config files,
// input lists, output sinks). Callers distinguish them with
// errors.Is().
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInputNotFound indicates the filename list could not be found.
	ErrInputNotFound = errors.New("input list not found")

	// ErrOutputFailed indicates the report could not be written.
	ErrOutputFailed = errors.New("output failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known
// sentinels, and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInputNotFound):
		return ExitInputError
	case errors.Is(err, ErrOutputFailed):
		return ExitOutputError
	}

	return ExitGeneralError
}
