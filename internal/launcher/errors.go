package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Kind classifies every failure that leaves a unified Launcher.
type Kind int

const (
	// KindGeneric is any unexpected failure inside an operation.
	KindGeneric Kind = iota
	// KindBuilderValidation is a missing or malformed LaunchSpec field,
	// reported before any engine exists.
	KindBuilderValidation
	// KindUnsupportedPlatform means the OS has no usable substrate.
	KindUnsupportedPlatform
	// KindPermissionDenied means the OS refused file, registry or
	// automation access.
	KindPermissionDenied
	// KindExecuteCommand is a non-zero exit from an external command.
	KindExecuteCommand
)

// Sentinels for errors.Is. A *Error matches the sentinel of its Kind.
var (
	ErrOperationFailed     = errors.New("operation failed")
	ErrBuilderValidation   = errors.New("invalid launch spec")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrExecuteCommand      = errors.New("command failed")
)

func (k Kind) String() string {
	switch k {
	case KindBuilderValidation:
		return "builder-validation"
	case KindUnsupportedPlatform:
		return "unsupported-platform"
	case KindPermissionDenied:
		return "permission-denied"
	case KindExecuteCommand:
		return "execute-command"
	default:
		return "generic"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindBuilderValidation:
		return ErrBuilderValidation
	case KindUnsupportedPlatform:
		return ErrUnsupportedPlatform
	case KindPermissionDenied:
		return ErrPermissionDenied
	case KindExecuteCommand:
		return ErrExecuteCommand
	default:
		return ErrOperationFailed
	}
}

// Operation names used in Error.Op.
const (
	OpBuild   = "build"
	OpEnable  = "enable"
	OpDisable = "disable"
	OpStatus  = "status"
)

// Error is the single failure type callers see from a unified Launcher.
type Error struct {
	Kind Kind
	Op   string
	Msg  string

	// Set for KindExecuteCommand (and for permission failures detected in
	// command output).
	Command  string
	ExitCode int
	Stderr   string

	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if e.Command != "" {
		fmt.Fprintf(&b, "failed to execute command: %s; exit code: %d; error: %s",
			e.Command, e.ExitCode, strings.TrimSpace(e.Stderr))
		if e.Kind == KindPermissionDenied {
			b.WriteString(" (permission denied)")
		}
		return b.String()
	}
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.sentinel().Error()
	}
	b.WriteString(msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// ValidationError reports an invalid LaunchSpec field.
func ValidationError(format string, args ...any) *Error {
	return &Error{Kind: KindBuilderValidation, Op: OpBuild, Msg: fmt.Sprintf(format, args...)}
}

// UnsupportedPlatformError reports an OS without a substrate.
func UnsupportedPlatformError(goos string) *Error {
	return &Error{Kind: KindUnsupportedPlatform, Msg: fmt.Sprintf("unsupported target os %q", goos)}
}

// CommandError reports a non-zero exit from an external command.
func CommandError(command string, exitCode int, stderr string) *Error {
	return &Error{Kind: KindExecuteCommand, Command: command, ExitCode: exitCode, Stderr: stderr}
}

// CommandPermissionError reports a command whose output carries a known
// access-denied signature.
func CommandPermissionError(command string, exitCode int, stderr string) *Error {
	return &Error{Kind: KindPermissionDenied, Command: command, ExitCode: exitCode, Stderr: stderr}
}

// KindOf returns the kind of the first *Error in err's chain, or KindGeneric.
func KindOf(err error) Kind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return KindGeneric
}

// Normalize maps any error produced inside op onto exactly one Kind:
//
//   - a *Error anywhere in the chain keeps its kind
//   - fs.ErrPermission (EACCES, EPERM, ERROR_ACCESS_DENIED) is KindPermissionDenied
//   - everything else is KindGeneric
//
// A nil error stays nil.
func Normalize(op string, err error) error {
	if err == nil {
		return nil
	}

	var le *Error
	if errors.As(err, &le) {
		if err == error(le) {
			if le.Op == "" {
				cp := *le
				cp.Op = op
				return &cp
			}
			return le
		}
		// Wrapped: keep the kind and details, keep the full chain.
		return &Error{
			Kind:     le.Kind,
			Op:       op,
			Command:  le.Command,
			ExitCode: le.ExitCode,
			Stderr:   le.Stderr,
			Err:      err,
		}
	}

	if errors.Is(err, fs.ErrPermission) {
		return &Error{Kind: KindPermissionDenied, Op: op, Err: err}
	}
	return &Error{Kind: KindGeneric, Op: op, Msg: "an error occurred while executing the operation", Err: err}
}
