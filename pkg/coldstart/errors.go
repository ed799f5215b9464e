package coldstart

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := st.Load(ctx, coldstart.CSVFileName)
//	if errors.Is(err, coldstart.ErrCSVNotFound) {
//	    // Handle missing source file
//	}
var (
	// ErrConnectionFailed indicates the database connection could not be established.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrCSVNotFound indicates the coldstart.csv source file was not found
	// or could not be opened.
	ErrCSVNotFound = errors.New("coldstart.csv not found")

	// ErrExecutionFailed indicates SQL execution failed and the transaction
	// was rolled back.
	ErrExecutionFailed = errors.New("execution failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrCSVNotFound):
		return ExitCSVMissing
	case errors.Is(err, ErrExecutionFailed):
		return ExitExecutionFailed
	}

	// Cobra reports CLI misuse as plain errors; classify them by message.
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "accepts ") {
		return ExitUsageError
	}

	// Check for common connection error patterns
	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	return ExitGeneralError
}
