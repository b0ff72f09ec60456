package engines

import (
	"context"
	"strings"

	"github.com/agentx-labs/autolaunch/internal/cmdline"
	"github.com/agentx-labs/autolaunch/internal/launcher"
	"github.com/agentx-labs/autolaunch/internal/platform"
)

// StartupFolder drops <AppName>.bat into the Startup (or Common Startup)
// folder. The file's existence is the whole state.
type StartupFolder struct {
	spec     launcher.LaunchSpec
	artifact fileArtifact
}

// NewStartupFolder builds the engine for the given startup directory.
func NewStartupFolder(spec launcher.LaunchSpec, dir string) *StartupFolder {
	spec = spec.Clone()
	return &StartupFolder{
		spec:     spec,
		artifact: fileArtifact{dir: dir, name: spec.AppName + ".bat"},
	}
}

func (s *StartupFolder) Name() string { return "windows-startup-folder" }

// Path returns the batch file location.
func (s *StartupFolder) Path() string { return s.artifact.path() }

func (s *StartupFolder) Enable(_ context.Context) error {
	return s.artifact.write([]byte(s.script()))
}

func (s *StartupFolder) Disable(_ context.Context) error {
	return s.artifact.remove()
}

func (s *StartupFolder) Status(_ context.Context) (bool, error) {
	return s.artifact.exists()
}

// script renders the batch file. cmd.exe expands %VAR% even inside quotes,
// so literal percent signs are doubled.
func (s *StartupFolder) script() string {
	workDir := batchEscape(platform.ParentDir(s.spec.AppPath))
	title := batchEscape(s.spec.AppName)
	lines := []string{
		"@echo off",
		"REM Auto-generated batch file for auto-launch",
		`cd /d "` + workDir + `"`,
		`start "` + title + `" /d "` + workDir + `" ` + batchCommand(s.spec.AppPath, s.spec.Args),
		"exit",
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}

func batchEscape(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

// batchCommand quotes the program and every argument. cmd.exe toggles its
// own quote state on each '"', so metacharacters that an escaped embedded
// quote leaves outside a quoted run are caret-escaped.
func batchCommand(program string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, cmdline.Quote(program))
	for _, a := range args {
		parts = append(parts, cmdline.Quote(a))
	}
	line := strings.Join(parts, " ")

	var b strings.Builder
	quoted := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			quoted = !quoted
		case c == '%':
			b.WriteByte('%')
		case !quoted && strings.IndexByte("&|<>()^", c) >= 0:
			b.WriteByte('^')
		}
		b.WriteByte(c)
	}
	return b.String()
}
