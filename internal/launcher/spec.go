package launcher

import (
	"fmt"
	"slices"
	"strings"
)

// WorkScope selects whether a registration applies to the invoking user or
// to every user of the machine.
type WorkScope string

const (
	CurrentUser WorkScope = "current-user"
	AllUsers    WorkScope = "all-users"
)

// ParseWorkScope accepts the canonical names plus the underscore and
// squashed spellings ("all_users", "alluser").
func ParseWorkScope(s string) (WorkScope, error) {
	switch normalizeName(s) {
	case "currentuser", "user", "":
		return CurrentUser, nil
	case "allusers", "alluser", "system", "machine":
		return AllUsers, nil
	default:
		return "", fmt.Errorf("unknown work scope %q: want %q or %q", s, CurrentUser, AllUsers)
	}
}

// AllUsers reports whether the scope is machine-wide.
func (s WorkScope) AllUsers() bool {
	return s == AllUsers
}

// WindowsEngine selects the Windows substrate.
type WindowsEngine string

const (
	WindowsRegistry      WindowsEngine = "registry"
	WindowsStartupFolder WindowsEngine = "startup-folder"
	WindowsTaskScheduler WindowsEngine = "task-scheduler"
)

// LinuxEngine selects the Linux substrate.
type LinuxEngine string

const (
	LinuxFreedesktop LinuxEngine = "freedesktop"
)

// MacOSEngine selects the macOS substrate.
type MacOSEngine string

const (
	MacOSLaunchAgent MacOSEngine = "launch-agent"
	MacOSAppleScript MacOSEngine = "apple-script"
)

// Engines holds the engine choice for each OS family. Only the entry for the
// running OS is consulted.
type Engines struct {
	Windows WindowsEngine `yaml:"windows,omitempty" mapstructure:"windows"`
	Linux   LinuxEngine   `yaml:"linux,omitempty" mapstructure:"linux"`
	MacOS   MacOSEngine   `yaml:"macos,omitempty" mapstructure:"macos"`
}

// DefaultEngines returns the registry, freedesktop and launch-agent engines.
func DefaultEngines() Engines {
	return Engines{
		Windows: WindowsRegistry,
		Linux:   LinuxFreedesktop,
		MacOS:   MacOSLaunchAgent,
	}
}

// ParseWindowsEngine parses a Windows engine name.
func ParseWindowsEngine(s string) (WindowsEngine, error) {
	switch normalizeName(s) {
	case "registry":
		return WindowsRegistry, nil
	case "startupfolder":
		return WindowsStartupFolder, nil
	case "taskscheduler":
		return WindowsTaskScheduler, nil
	default:
		return "", fmt.Errorf("unknown windows engine %q", s)
	}
}

// ParseLinuxEngine parses a Linux engine name.
func ParseLinuxEngine(s string) (LinuxEngine, error) {
	switch normalizeName(s) {
	case "freedesktop", "xdg":
		return LinuxFreedesktop, nil
	default:
		return "", fmt.Errorf("unknown linux engine %q", s)
	}
}

// ParseMacOSEngine parses a macOS engine name.
func ParseMacOSEngine(s string) (MacOSEngine, error) {
	switch normalizeName(s) {
	case "launchagent", "launchd":
		return MacOSLaunchAgent, nil
	case "applescript", "loginitem":
		return MacOSAppleScript, nil
	default:
		return "", fmt.Errorf("unknown macos engine %q", s)
	}
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

// LaunchSpec describes what to start at login and how to register it.
// Engines receive a copy and never modify it.
type LaunchSpec struct {
	AppName string
	// AppPath is the absolute path of the program (or .app bundle) to start.
	AppPath string
	Args    []string
	Scope   WorkScope
	Engines Engines
	// Identifiers are bundle identifiers; the first one also names the
	// launch-agent plist. Only the launch-agent engine reads them.
	Identifiers []string
	// ExtraConfig is appended verbatim to desktop entries and spliced into
	// launch-agent plists. The caller owns its syntax.
	ExtraConfig string
}

// Clone returns a deep copy so later changes to the source slices cannot
// reach an engine.
func (s LaunchSpec) Clone() LaunchSpec {
	s.Args = slices.Clone(s.Args)
	s.Identifiers = slices.Clone(s.Identifiers)
	return s
}

// HasArg reports whether any of names appears verbatim in Args.
func (s LaunchSpec) HasArg(names ...string) bool {
	for _, a := range s.Args {
		if slices.Contains(names, a) {
			return true
		}
	}
	return false
}
