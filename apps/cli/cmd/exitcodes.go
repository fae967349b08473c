package cmd

// Exit codes for the jsonspec CLI
const (
	// ExitSuccess indicates the documents matched
	ExitSuccess = 0

	// ExitMatchFailure indicates the documents did not match
	ExitMatchFailure = 1

	// ExitParseError indicates an input file could not be read or parsed
	ExitParseError = 2

	// ExitConfigError indicates a rules file error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
