package autolaunch

import (
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"strings"

	"github.com/agentx-labs/autolaunch/internal/command"
	"github.com/agentx-labs/autolaunch/internal/engines"
	"github.com/agentx-labs/autolaunch/internal/launcher"
	"github.com/agentx-labs/autolaunch/internal/platform"
)

// Builder collects LaunchSpec fields. Setters return the builder so calls
// chain; the first deferred failure (from Automatic) is reported by Build.
type Builder struct {
	spec launcher.LaunchSpec
	err  error

	goos       string
	runner     command.Runner
	registry   engines.RegistryStore
	dir        string
	logger     *slog.Logger
	executable func() (string, error)
}

// New returns a builder with the current-user scope and default engines.
func New(opts ...Option) *Builder {
	b := &Builder{
		spec: launcher.LaunchSpec{
			Scope:   launcher.CurrentUser,
			Engines: launcher.DefaultEngines(),
		},
		goos:       runtime.GOOS,
		executable: defaultExecutable,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromSpec seeds the builder with an existing spec, e.g. one loaded from a
// manifest. Empty scope and engine entries keep their defaults.
func (b *Builder) FromSpec(spec launcher.LaunchSpec) *Builder {
	spec = spec.Clone()
	if spec.Scope == "" {
		spec.Scope = b.spec.Scope
	}
	if spec.Engines.Windows == "" {
		spec.Engines.Windows = b.spec.Engines.Windows
	}
	if spec.Engines.Linux == "" {
		spec.Engines.Linux = b.spec.Engines.Linux
	}
	if spec.Engines.MacOS == "" {
		spec.Engines.MacOS = b.spec.Engines.MacOS
	}
	b.spec = spec
	return b
}

func (b *Builder) SetAppName(name string) *Builder {
	b.spec.AppName = name
	return b
}

func (b *Builder) SetAppPath(path string) *Builder {
	b.spec.AppPath = path
	return b
}

// SetArgs replaces the argument list.
func (b *Builder) SetArgs(args ...string) *Builder {
	b.spec.Args = slices.Clone(args)
	return b
}

// AddArgs appends to the argument list.
func (b *Builder) AddArgs(args ...string) *Builder {
	b.spec.Args = append(b.spec.Args, args...)
	return b
}

func (b *Builder) SetWorkScope(scope launcher.WorkScope) *Builder {
	b.spec.Scope = scope
	return b
}

func (b *Builder) SetWindowsEngine(e launcher.WindowsEngine) *Builder {
	b.spec.Engines.Windows = e
	return b
}

func (b *Builder) SetLinuxEngine(e launcher.LinuxEngine) *Builder {
	b.spec.Engines.Linux = e
	return b
}

func (b *Builder) SetMacOSEngine(e launcher.MacOSEngine) *Builder {
	b.spec.Engines.MacOS = e
	return b
}

// SetIdentifiers replaces the bundle identifiers.
func (b *Builder) SetIdentifiers(ids ...string) *Builder {
	b.spec.Identifiers = slices.Clone(ids)
	return b
}

// AddIdentifiers appends bundle identifiers.
func (b *Builder) AddIdentifiers(ids ...string) *Builder {
	b.spec.Identifiers = append(b.spec.Identifiers, ids...)
	return b
}

func (b *Builder) SetExtraConfig(cfg string) *Builder {
	b.spec.ExtraConfig = cfg
	return b
}

// SetExtraConfigIf sets the extra configuration only when cond holds, so
// per-OS fragments can be chained without breaking the call.
func (b *Builder) SetExtraConfigIf(cond bool, cfg string) *Builder {
	if cond {
		b.spec.ExtraConfig = cfg
	}
	return b
}

// Automatic fills AppPath with the running executable and AppName with its
// file name minus the extension.
func (b *Builder) Automatic() *Builder {
	exe, err := b.executable()
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("resolving current executable: %w", err)
		}
		return b
	}
	b.spec.AppPath = exe
	b.spec.AppName = platform.StemName(exe)
	return b
}

// Spec validates the collected fields and returns a copy of the launch spec.
func (b *Builder) Spec() (launcher.LaunchSpec, error) {
	if b.err != nil {
		return launcher.LaunchSpec{}, launcher.Normalize(launcher.OpBuild, b.err)
	}
	spec := b.spec.Clone()
	spec.AppName = strings.TrimSpace(spec.AppName)
	spec.AppPath = strings.TrimSpace(spec.AppPath)

	if spec.AppName == "" {
		return launcher.LaunchSpec{}, launcher.ValidationError("app name is required")
	}
	if spec.AppPath == "" {
		return launcher.LaunchSpec{}, launcher.ValidationError("app path is required")
	}
	if !platform.IsAbsFor(b.goos, spec.AppPath) {
		return launcher.LaunchSpec{}, launcher.ValidationError("app path %q is not absolute", spec.AppPath)
	}
	for _, id := range spec.Identifiers {
		// The first identifier names the launch agent plist.
		if id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
			return launcher.LaunchSpec{}, launcher.ValidationError("identifier %q is not a valid bundle identifier", id)
		}
	}
	switch spec.Scope {
	case launcher.CurrentUser, launcher.AllUsers:
	case "":
		spec.Scope = launcher.CurrentUser
	default:
		return launcher.LaunchSpec{}, launcher.ValidationError("unknown work scope %q", spec.Scope)
	}
	return spec, nil
}

// Build validates the launch spec and returns the engine for the target OS wrapped
// in launcher.Unified, and in launcher.Logged when a logger is configured.
// Nothing on disk, in the registry or in other processes is touched.
func (b *Builder) Build() (launcher.Launcher, error) {
	p, err := b.plan()
	if err != nil {
		return nil, err
	}
	var l launcher.Launcher = launcher.Unify(p.engine)
	if b.logger != nil {
		l = launcher.WithLogging(l, b.logger)
	}
	return l, nil
}

// BuildSafe is Build wrapped in launcher.Safe.
func (b *Builder) BuildSafe() (*launcher.Safe, error) {
	l, err := b.Build()
	if err != nil {
		return nil, err
	}
	return launcher.NewSafe(l), nil
}

// Plan describes what Build would produce without building it.
type Plan struct {
	Family platform.Family
	// Engine is the engine's Name, e.g. "linux-freedesktop".
	Engine string
	// Location is where the artifact lives: a file, a registry key, a task
	// path or the login items list.
	Location string
	Spec     launcher.LaunchSpec
}

// Plan validates the launch spec and resolves the engine and artifact location.
func (b *Builder) Plan() (Plan, error) {
	p, err := b.plan()
	if err != nil {
		return Plan{}, err
	}
	return p.Plan, nil
}

type plan struct {
	Plan
	engine launcher.Launcher
}

func (b *Builder) plan() (plan, error) {
	spec, err := b.Spec()
	if err != nil {
		return plan{}, err
	}
	family := platform.Detect(b.goos)

	var p plan
	switch family {
	case platform.Windows:
		p, err = b.windows(spec)
	case platform.Linux:
		p, err = b.linux(spec)
	case platform.MacOS:
		p, err = b.macOS(spec)
	default:
		uerr := launcher.UnsupportedPlatformError(b.goos)
		uerr.Op = launcher.OpBuild
		return plan{}, uerr
	}
	if err != nil {
		return plan{}, launcher.Normalize(launcher.OpBuild, err)
	}
	p.Family = family
	p.Engine = launcher.NameOf(p.engine)
	return p, nil
}

func (b *Builder) windows(spec launcher.LaunchSpec) (plan, error) {
	switch spec.Engines.Windows {
	case launcher.WindowsRegistry:
		hive := engines.HiveCurrentUser
		if spec.Scope.AllUsers() {
			hive = engines.HiveLocalMachine
		}
		return plan{
			Plan:   Plan{Spec: spec, Location: fmt.Sprintf(`%s\%s\%s`, hive, engines.RunKeyPath, spec.AppName)},
			engine: engines.NewRegistry(spec, b.registry),
		}, nil
	case launcher.WindowsStartupFolder:
		dir, err := b.directory(platform.StartupDir, spec)
		if err != nil {
			return plan{}, err
		}
		e := engines.NewStartupFolder(spec, dir)
		return plan{Plan: Plan{Spec: spec, Location: e.Path()}, engine: e}, nil
	case launcher.WindowsTaskScheduler:
		e := engines.NewTaskScheduler(spec, b.runner)
		return plan{Plan: Plan{Spec: spec, Location: e.TaskPath()}, engine: e}, nil
	default:
		return plan{}, launcher.ValidationError("unknown windows engine %q", spec.Engines.Windows)
	}
}

func (b *Builder) linux(spec launcher.LaunchSpec) (plan, error) {
	if spec.Engines.Linux != launcher.LinuxFreedesktop {
		return plan{}, launcher.ValidationError("unknown linux engine %q", spec.Engines.Linux)
	}
	dir, err := b.directory(platform.AutostartDir, spec)
	if err != nil {
		return plan{}, err
	}
	e := engines.NewFreedesktop(spec, dir)
	return plan{Plan: Plan{Spec: spec, Location: e.Path()}, engine: e}, nil
}

func (b *Builder) macOS(spec launcher.LaunchSpec) (plan, error) {
	switch spec.Engines.MacOS {
	case launcher.MacOSLaunchAgent:
		dir, err := b.directory(platform.LaunchAgentsDir, spec)
		if err != nil {
			return plan{}, err
		}
		e := engines.NewLaunchAgent(spec, dir)
		return plan{Plan: Plan{Spec: spec, Location: e.Path()}, engine: e}, nil
	case launcher.MacOSAppleScript:
		// Login items point at the bundle, not the binary inside it.
		spec.AppPath = platform.AppBundle(spec.AppPath)
		spec.AppName = platform.StemName(spec.AppPath)
		e := engines.NewAppleScript(spec, b.runner)
		return plan{Plan: Plan{Spec: spec, Location: "login item " + spec.AppName}, engine: e}, nil
	default:
		return plan{}, launcher.ValidationError("unknown macos engine %q", spec.Engines.MacOS)
	}
}

func (b *Builder) directory(resolve func(allUsers bool) (string, error), spec launcher.LaunchSpec) (string, error) {
	if b.dir != "" {
		return b.dir, nil
	}
	dir, err := resolve(spec.Scope.AllUsers())
	if err != nil {
		return "", fmt.Errorf("resolving autostart directory: %w", err)
	}
	return dir, nil
}
