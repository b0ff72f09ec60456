package engines

import (
	"context"
	"fmt"
	"strings"

	"github.com/agentx-labs/autolaunch/internal/command"
	"github.com/agentx-labs/autolaunch/internal/launcher"
)

// OSAScript is the interpreter the AppleScript engine invokes.
const OSAScript = "osascript"

// errAppleEventsDenied is the AppleScript error number for "Not authorized
// to send Apple events".
const errAppleEventsDenied = "-1743"

// AppleScript manages a System Events login item.
type AppleScript struct {
	spec launcher.LaunchSpec
	host scriptHost
}

// NewAppleScript builds the engine. The launch spec should already carry the
// bundle stem as AppName and the .app bundle as AppPath. A nil runner
// executes real processes.
func NewAppleScript(spec launcher.LaunchSpec, runner command.Runner) *AppleScript {
	return &AppleScript{
		spec: spec.Clone(),
		host: scriptHost{
			runner:        defaultRunner(runner),
			name:          OSAScript,
			flags:         []string{"-e"},
			deniedMarkers: []string{errAppleEventsDenied},
		},
	}
}

func (a *AppleScript) Name() string { return "macos-apple-script" }

// Hidden reports whether the login item starts hidden.
func (a *AppleScript) Hidden() bool {
	return a.spec.HasArg("--hidden", "--minimized")
}

func (a *AppleScript) Enable(ctx context.Context) error {
	if err := a.Disable(ctx); err != nil {
		return err
	}
	script := fmt.Sprintf(
		`tell application "System Events" to make login item at end with properties {name:%s, path:%s, hidden:%t}`,
		asQuote(a.spec.AppName), asQuote(a.spec.AppPath), a.Hidden())
	_, err := a.host.run(ctx, script)
	return err
}

func (a *AppleScript) Disable(ctx context.Context) error {
	enabled, err := a.Status(ctx)
	if err != nil || !enabled {
		return err
	}
	script := fmt.Sprintf(`tell application "System Events" to delete login item %s`, asQuote(a.spec.AppName))
	_, err = a.host.run(ctx, script)
	return err
}

func (a *AppleScript) Status(ctx context.Context) (bool, error) {
	script := fmt.Sprintf(`tell application "System Events" to exists login item %s`, asQuote(a.spec.AppName))
	out, err := a.host.run(ctx, script)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(out, "true"), nil
}

// asQuote renders s as an AppleScript string literal.
func asQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
