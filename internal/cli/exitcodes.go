package cli

import (
	"errors"

	"github.com/yaklabco/gohtmlint/pkg/lint"
	"github.com/yaklabco/gohtmlint/pkg/runner"
)

// Exit codes for gohtmlint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitLintErrors indicates lint completed but found errors.
	ExitLintErrors = 1

	// ExitLintWarnings indicates lint completed but found warnings (when strict mode).
	ExitLintWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitError carries a specific process exit code to main.
type ExitError struct {
	Code int
	err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string { return e.err.Error() }

// Unwrap exposes the underlying error for errors.Is checks.
func (e *ExitError) Unwrap() error { return e.err }

// ExitCodeFromResult determines the exit code based on result and strict mode.
// Malformed markup counts as a lint failure; files that could not be read or
// written map to the IO exit code.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	errorCount := result.Stats.DiagnosticsBySeverity["error"]
	warningCount := result.Stats.DiagnosticsBySeverity["warning"]

	var parseFailed, ioFailed bool
	for _, file := range result.Files {
		switch {
		case file.Error == nil:
		case errors.Is(file.Error, lint.ErrParseFailure):
			parseFailed = true
		default:
			ioFailed = true
		}
	}

	if errorCount > 0 || parseFailed {
		return ExitLintErrors
	}

	if ioFailed {
		return ExitIOError
	}

	if strict && warningCount > 0 {
		return ExitLintWarnings
	}

	return ExitSuccess
}
