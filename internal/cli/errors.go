package cli

import "errors"

// Exit codes
const (
	ExitSuccess = 0 // Report written
	ExitFailure = 1 // Ingestion, template, classification or configuration fault
	ExitUsage   = 2 // Wrong command-line usage
)

// UsageError reports a command line that cannot be run
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsage
	}
	return ExitFailure
}
