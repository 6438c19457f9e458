package filetriage

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Classification and report completed
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration or flag combination
	ExitInputError   = 11 // Filename list could not be read
	ExitOutputError  = 12 // Report could not be encoded or written
)

const (
	// OutputTable renders the report as a styled console table.
	OutputTable = "table"

	// OutputJSON emits the report as deterministic JSON.
	OutputJSON = "json"

	// DefaultProgressWidth is the progress bar width in cells.
	DefaultProgressWidth = 40
)
