package cli

import (
	"errors"
	"fmt"

	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/engine"
	"github.com/booklint/booklint/pkg/runner"
)

// Exit codes for booklint.
const (
	// ExitSuccess indicates no issues were found.
	ExitSuccess = 0

	// ExitLintErrors indicates error-severity findings.
	ExitLintErrors = 1

	// ExitLintWarnings indicates warning findings under --strict.
	ExitLintWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates a configuration error.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

// ExitCodeError carries a specific process exit code through cobra's error
// return. A nil Err means the run was already reported and only the code
// matters.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitCodeError) Unwrap() error { return e.Err }

// Silent reports whether the error only signals an exit code and needs no
// log line of its own.
func Silent(err error) bool {
	var exitErr *ExitCodeError
	return errors.As(err, &exitErr) && exitErr.Err == nil
}

// ExitCode maps an error from command execution onto a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var cfgErr *engine.ConfigError
	if errors.As(err, &cfgErr) {
		return ExitConfigError
	}
	return ExitInternalError
}

// ExitCodeFromResult maps a run result onto an exit code.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.FindingsBySeverity[string(check.SeverityError)] > 0 || result.Stats.FilesErrored > 0 {
		return ExitLintErrors
	}
	if strict && result.Stats.FindingsBySeverity[string(check.SeverityWarning)] > 0 {
		return ExitLintWarnings
	}
	return ExitSuccess
}
