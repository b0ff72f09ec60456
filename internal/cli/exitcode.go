package cli

import (
	"errors"
	"fmt"

	"github.com/agentx-labs/autolaunch/internal/launcher"
	"github.com/agentx-labs/autolaunch/internal/manifest"
)

// Process exit codes. Scripts rely on these, so values never change.
const (
	ExitOK            = 0 // success
	ExitFailure       = 1 // unexpected failure
	ExitInvalidInput  = 2 // bad launch spec, flags or launch-spec file
	ExitUnsupported   = 3 // OS has no autostart substrate
	ExitPermission    = 4 // OS refused access
	ExitCommandFailed = 5 // powershell.exe or osascript exited non-zero
)

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if manifest.IsInvalid(err) {
		return ExitInvalidInput
	}
	var usage *usageError
	if errors.As(err, &usage) {
		return ExitInvalidInput
	}
	switch launcher.KindOf(err) {
	case launcher.KindBuilderValidation:
		return ExitInvalidInput
	case launcher.KindUnsupportedPlatform:
		return ExitUnsupported
	case launcher.KindPermissionDenied:
		return ExitPermission
	case launcher.KindExecuteCommand:
		return ExitCommandFailed
	default:
		return ExitFailure
	}
}

// usageError marks a bad flag or argument value.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}
