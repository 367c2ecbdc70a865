package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/fsinspect/errors"
)

// Exit codes returned by the fsinspect binary.
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitUsageError      = 2
	ExitPanic           = 3
	ExitNotFound        = 4
	ExitAlreadyExists   = 5
	ExitInvalidArgument = 6
	ExitAccessDenied    = 7
	ExitUnsupported     = 8
	ExitIOError         = 9
)

// usageError marks a failure caused by how the command was invoked.
type usageError struct {
	error
}

func (e usageError) Unwrap() error { return e.error }

// usageArgs wraps a cobra argument validator so its failures map to
// ExitUsageError.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// cobra reports unknown commands as plain errors.
var usagePatterns = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand flag",
	"invalid argument",
	"required flag",
}

// ExitCodeForError returns the exit code for an error returned by Execute.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ue usageError
	if errors.As(err, &ue) {
		return ExitUsageError
	}

	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		return ExitNotFound
	case errors.CodeAlreadyExists:
		return ExitAlreadyExists
	case errors.CodeInvalidArgument:
		return ExitInvalidArgument
	case errors.CodeAccessDenied:
		return ExitAccessDenied
	case errors.CodeUnsupported:
		return ExitUnsupported
	case errors.CodeIO:
		return ExitIOError
	case errors.CodeInvalidConfig:
		return ExitUsageError
	case errors.CodeInternal:
		return ExitGeneralError
	}

	msg := err.Error()
	for _, p := range usagePatterns {
		if strings.HasPrefix(msg, p) {
			return ExitUsageError
		}
	}
	return ExitGeneralError
}
