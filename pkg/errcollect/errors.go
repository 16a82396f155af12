package errcollect

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := cli.Execute()
//	if errors.Is(err, errcollect.ErrReportWrite) {
//	    // the scan ran but its output is missing
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRootNotFound indicates the scan root does not exist or is not a directory.
	ErrRootNotFound = errors.New("scan root not found")

	// ErrReportWrite indicates a report table could not be written.
	ErrReportWrite = errors.New("report write failed")
)

// usageErrorFragments are the messages cobra and our argument validators
// produce for command-line misuse.
var usageErrorFragments = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"missing required argument",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrRootNotFound):
		return ExitRootNotFound
	case errors.Is(err, ErrReportWrite):
		return ExitReportFailure
	}

	errStr := err.Error()
	for _, fragment := range usageErrorFragments {
		if strings.Contains(errStr, fragment) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
