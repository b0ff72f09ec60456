//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agentx-labs/autolaunch/internal/platform"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir     string // AUTOLAUNCH_HOME, holds config.yaml
	ArtifactDir string // substrate directory for the file-backed engines
	SpecDir     string // launch-spec files written by the test
}

// setupTestEnv creates isolated temp directories and points every
// file-backed substrate at them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:     t.TempDir(),
		ArtifactDir: filepath.Join(t.TempDir(), "autostart"),
		SpecDir:     t.TempDir(),
	}

	t.Setenv("AUTOLAUNCH_HOME", env.HomeDir)
	t.Setenv(platform.AutostartDirEnv, env.ArtifactDir)
	t.Setenv(platform.LaunchAgentsDirEnv, env.ArtifactDir)
	t.Setenv(platform.StartupDirEnv, env.ArtifactDir)

	return env
}

// writeSpec writes a launch-spec file and returns its path.
func writeSpec(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func artifactCount(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0
	}
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	return len(entries)
}

// testExecutable returns an absolute program path valid on the host OS.
func testExecutable(t *testing.T) string {
	t.Helper()
	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("os.Executable: %v", err)
	}
	return exe
}
