package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/autolaunch/internal/branding"
)

// Environment overrides for substrate directories. Each one, when set, wins
// over the OS default for both scopes.
var (
	AutostartDirEnv    = branding.EnvVar("AUTOSTART_DIR")
	LaunchAgentsDirEnv = branding.EnvVar("LAUNCH_AGENTS_DIR")
	StartupDirEnv      = branding.EnvVar("STARTUP_DIR")
)

// AutostartDir returns the freedesktop autostart directory:
// $XDG_CONFIG_HOME/autostart (default ~/.config/autostart) for the current
// user, /etc/xdg/autostart for all users.
func AutostartDir(allUsers bool) (string, error) {
	if v := os.Getenv(AutostartDirEnv); v != "" {
		return v, nil
	}
	if allUsers {
		return filepath.Join(string(filepath.Separator), "etc", "xdg", "autostart"), nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" && filepath.IsAbs(xdg) {
		return filepath.Join(xdg, "autostart"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "autostart"), nil
}

// LaunchAgentsDir returns ~/Library/LaunchAgents for the current user and
// /Library/LaunchAgents for all users.
func LaunchAgentsDir(allUsers bool) (string, error) {
	if v := os.Getenv(LaunchAgentsDirEnv); v != "" {
		return v, nil
	}
	if allUsers {
		return filepath.Join(string(filepath.Separator), "Library", "LaunchAgents"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, "Library", "LaunchAgents"), nil
}

// StartupDir returns the Windows Startup special folder, or Common Startup
// when allUsers is set.
func StartupDir(allUsers bool) (string, error) {
	if v := os.Getenv(StartupDirEnv); v != "" {
		return v, nil
	}
	base, envName := os.Getenv("APPDATA"), "APPDATA"
	if allUsers {
		base, envName = os.Getenv("ProgramData"), "ProgramData"
	}
	if base == "" {
		return "", fmt.Errorf("resolving startup folder: %%%s%% is not set", envName)
	}
	return filepath.Join(base, "Microsoft", "Windows", "Start Menu", "Programs", "Startup"), nil
}

// IsAbsFor checks if path is absolute in the dialect of goos. Windows
// accepts a drive (C:\ or C:/) or UNC (\\server\share) prefix; every other
// OS needs a leading slash.
func IsAbsFor(goos, path string) bool {
	if goos != "windows" {
		return strings.HasPrefix(path, "/")
	}
	if strings.HasPrefix(path, `\\`) {
		return true
	}
	return len(path) >= 3 && isDriveLetter(path[0]) && path[1] == ':' && (path[2] == '\\' || path[2] == '/')
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ParentDir returns the directory part of a path, splitting on either
// separator so Windows paths resolve the same way on every host.
func ParentDir(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			if i == 0 {
				return path[:1]
			}
			// Keep the separator after a drive letter: C:\app.exe → C:\
			if i == 2 && path[1] == ':' {
				return path[:3]
			}
			return path[:i]
		}
	}
	return "."
}

// BaseName returns the last element of a path, splitting on either separator.
func BaseName(path string) string {
	path = strings.TrimRight(path, `/\`)
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// StemName returns the base name without its final extension.
func StemName(path string) string {
	base := BaseName(path)
	if i := strings.LastIndex(base, "."); i > 0 {
		return base[:i]
	}
	return base
}

// AppBundle trims a path inside a macOS application bundle back to the
// bundle itself: /Applications/Foo.app/Contents/MacOS/foo → /Applications/Foo.app.
// Paths outside a bundle are returned unchanged.
func AppBundle(path string) string {
	idx := strings.Index(strings.ToLower(path), ".app/")
	if idx == -1 {
		return path
	}
	return path[:idx+len(".app")]
}
