package engines

import (
	"context"
	"fmt"
	"strings"

	"github.com/agentx-labs/autolaunch/internal/command"
	"github.com/agentx-labs/autolaunch/internal/launcher"
)

// scriptHost runs one scripting interpreter and classifies its failures.
type scriptHost struct {
	runner command.Runner
	name   string
	flags  []string
	// deniedMarkers are output fragments that mean the OS refused access.
	deniedMarkers []string
}

// run executes script and returns trimmed stdout. Non-zero exits become
// launcher errors carrying the script text.
func (h scriptHost) run(ctx context.Context, script string) (string, error) {
	args := append(append([]string{}, h.flags...), script)
	out, err := h.runner.Run(ctx, h.name, args...)
	if err != nil {
		return "", fmt.Errorf("running %s: %w", command.String(h.name, h.flags...), err)
	}
	if !out.Success() {
		if h.denied(out) {
			return "", launcher.CommandPermissionError(script, out.ExitCode, out.Stderr)
		}
		return "", launcher.CommandError(script, out.ExitCode, out.Stderr)
	}
	return strings.TrimSpace(out.Stdout), nil
}

func (h scriptHost) denied(out *command.Output) bool {
	for _, m := range h.deniedMarkers {
		if strings.Contains(out.Stderr, m) || strings.Contains(out.Stdout, m) {
			return true
		}
	}
	return false
}

func defaultRunner(r command.Runner) command.Runner {
	if r == nil {
		return &command.ExecRunner{}
	}
	return r
}
