package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// Process exit codes. Stable contract for scripting around the CLI.
const (
	ExitOK                 = 0
	ExitUnexpected         = 1
	ExitNotEnoughArguments = 2
	ExitTargetExists       = 3
	ExitExpectedArchive    = 4
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}

	var ee *ExportError
	if errors.As(err, &ee) {
		switch ee.Category {
		case CategoryUsage:
			return ExitNotEnoughArguments
		case CategoryTarget:
			return ExitTargetExists
		case CategoryArchive:
			return ExitExpectedArchive
		default:
			return ExitUnexpected
		}
	}

	return ExitUnexpected
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	var ee *ExportError
	if errors.As(err, &ee) {
		if a.verbose {
			return ee.Error()
		}
		switch ee.Category {
		case CategoryUsage, CategoryTarget:
			return ee.Message
		default:
			return fmt.Sprintf("%s: %s", ee.Category, ee.Message)
		}
	}

	return fmt.Sprintf("Error: %v", err)
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	var ee *ExportError
	if errors.As(err, &ee) {
		attrs := []any{slog.String("category", string(ee.Category))}
		if ee.Cause != nil {
			attrs = append(attrs, slog.String("cause", ee.Cause.Error()))
		}
		a.logger.Error(ee.Message, attrs...)
	} else {
		a.logger.Error("Unclassified error", "error", err)
	}

	fmt.Fprintf(os.Stderr, "%s\n", a.FormatError(err))
	os.Exit(a.ExitCodeFor(err))
}
