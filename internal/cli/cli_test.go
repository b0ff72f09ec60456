package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentx-labs/autolaunch/internal/launcher"
	"github.com/agentx-labs/autolaunch/internal/manifest"
	"github.com/agentx-labs/autolaunch/internal/platform"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("drives the freedesktop engine")
	}
	root := t.TempDir()
	t.Setenv("AUTOLAUNCH_HOME", filepath.Join(root, "home"))
	autostart := filepath.Join(root, "autostart")
	t.Setenv(platform.AutostartDirEnv, autostart)
	return autostart
}

func TestEnableStatusDisable(t *testing.T) {
	dir := isolate(t)

	out, err := execute(t, "enable", "--name", "notes", "--path", "/opt/notes/notes", "--arg", "--hidden")
	require.NoError(t, err)
	assert.Contains(t, out, "Enabled notes via linux-freedesktop")

	content, err := os.ReadFile(filepath.Join(dir, "notes.desktop"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `Exec="/opt/notes/notes" --hidden`)

	out, err = execute(t, "status", "--name", "notes", "--path", "/opt/notes/notes", "--json")
	require.NoError(t, err)
	var report statusReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Enabled)
	assert.Equal(t, "linux-freedesktop", report.Engine)
	assert.Equal(t, filepath.Join(dir, "notes.desktop"), report.Location)

	out, err = execute(t, "disable", "--name", "notes", "--path", "/opt/notes/notes")
	require.NoError(t, err)
	assert.Contains(t, out, "Disabled notes")
	assert.NoFileExists(t, filepath.Join(dir, "notes.desktop"))
}

func TestEnableRejectsRelativePath(t *testing.T) {
	isolate(t)

	_, err := execute(t, "enable", "--name", "relative", "--path", "bin/notes")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCode(err))
}

func TestInitThenValidate(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "notes.yaml")

	out, err := execute(t, "init", file, "--name", "notes", "--path", "/opt/notes/notes", "--identifier", "com.example.notes")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+file)

	f, err := manifest.Load(file)
	require.NoError(t, err)
	assert.Equal(t, []string{"com.example.notes"}, f.Identifiers)

	out, err = execute(t, "validate", file)
	require.NoError(t, err)
	assert.Contains(t, out, file)
}

func TestValidateReportsIssues(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(file, []byte("schema_version: \"1\"\nname: notes\npath: /opt/notes\nscope: everyone\n"), 0o644))

	out, err := execute(t, "validate", file)
	require.Error(t, err)
	assert.Contains(t, out, "/scope")
	assert.Equal(t, ExitInvalidInput, ExitCode(err))
}

func TestConfigSetGet(t *testing.T) {
	isolate(t)

	_, err := execute(t, "config", "set", "engine.linux", "freedesktop")
	require.NoError(t, err)
	out, err := execute(t, "config", "get", "engine.linux")
	require.NoError(t, err)
	assert.Equal(t, "freedesktop\n", out)

	_, err = execute(t, "config", "set", "engine.linux", "systemd")
	assert.Equal(t, ExitInvalidInput, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"generic", errors.New("boom"), ExitFailure},
		{"validation", launcher.ValidationError("app name is required"), ExitInvalidInput},
		{"unsupported", launcher.UnsupportedPlatformError("plan9"), ExitUnsupported},
		{"permission", launcher.Normalize(launcher.OpEnable, os.ErrPermission), ExitPermission},
		{"command", launcher.CommandError("osascript -e x", 1, "boom"), ExitCommandFailed},
		{"wrapped command", fmt.Errorf("enabling: %w", launcher.CommandError("x", 2, "")), ExitCommandFailed},
		{"manifest", &manifest.InvalidError{Path: "x.yaml"}, ExitInvalidInput},
		{"usage", usagef("bad flag"), ExitInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
