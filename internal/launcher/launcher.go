package launcher

import (
	"context"

	"github.com/agentx-labs/autolaunch/internal/platform"
)

// Launcher is the contract every engine and decorator implements.
type Launcher interface {
	// Enable creates or overwrites the autostart artifact. Calling it when
	// the artifact already exists is not an error.
	Enable(ctx context.Context) error

	// Disable removes the autostart artifact. Calling it when the artifact
	// does not exist is not an error.
	Disable(ctx context.Context) error

	// Status reports whether the artifact exists and, where the substrate
	// tracks it, has not been switched off by the user.
	Status(ctx context.Context) (bool, error)
}

// Named is implemented by launchers that can report which engine they use.
type Named interface {
	Name() string
}

// NameOf returns l's engine name, or "" when l does not implement Named.
func NameOf(l Launcher) string {
	if n, ok := l.(Named); ok {
		return n.Name()
	}
	return ""
}

// IsSupported reports whether the running OS has an autostart substrate.
func IsSupported() bool {
	return platform.Current().Supported()
}

// StatusResult carries the outcome of StatusAsync.
type StatusResult struct {
	Enabled bool
	Err     error
}

// EnableAsync runs l.Enable on its own goroutine. The channel receives
// exactly one value and is then closed.
func EnableAsync(ctx context.Context, l Launcher) <-chan error {
	ch := make(chan error, 1)
	go func() {
		defer close(ch)
		ch <- l.Enable(ctx)
	}()
	return ch
}

// DisableAsync runs l.Disable on its own goroutine.
func DisableAsync(ctx context.Context, l Launcher) <-chan error {
	ch := make(chan error, 1)
	go func() {
		defer close(ch)
		ch <- l.Disable(ctx)
	}()
	return ch
}

// StatusAsync runs l.Status on its own goroutine.
func StatusAsync(ctx context.Context, l Launcher) <-chan StatusResult {
	ch := make(chan StatusResult, 1)
	go func() {
		defer close(ch)
		enabled, err := l.Status(ctx)
		ch <- StatusResult{Enabled: enabled, Err: err}
	}()
	return ch
}
