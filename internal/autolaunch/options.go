package autolaunch

import (
	"log/slog"
	"os"

	"github.com/agentx-labs/autolaunch/internal/command"
	"github.com/agentx-labs/autolaunch/internal/engines"
)

// Option configures the environment a Builder targets. Options replace OS
// facilities, so tests can build any engine on any host.
type Option func(*Builder)

// WithOS targets the given GOOS instead of the running one.
func WithOS(goos string) Option {
	return func(b *Builder) {
		b.goos = goos
	}
}

// WithRunner sets the process runner used by the task-scheduler and
// AppleScript engines.
func WithRunner(r command.Runner) Option {
	return func(b *Builder) {
		b.runner = r
	}
}

// WithRegistryStore sets the registry backing the registry engine.
func WithRegistryStore(s engines.RegistryStore) Option {
	return func(b *Builder) {
		b.registry = s
	}
}

// WithDirectory overrides the substrate directory of the file-backed
// engines (Startup folder, autostart, LaunchAgents).
func WithDirectory(dir string) Option {
	return func(b *Builder) {
		b.dir = dir
	}
}

// WithLogger wraps built launchers in launcher.Logged.
func WithLogger(log *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = log
	}
}

// WithExecutable replaces os.Executable for Automatic.
func WithExecutable(fn func() (string, error)) Option {
	return func(b *Builder) {
		b.executable = fn
	}
}

func defaultExecutable() (string, error) {
	return os.Executable()
}
