package command

import (
	"bytes"
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputSuccess(t *testing.T) {
	var nilOut *Output
	assert.False(t, nilOut.Success())
	assert.True(t, (&Output{}).Success())
	assert.False(t, (&Output{ExitCode: 1}).Success())
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"osascript", []string{"-e", "tell app"}, `osascript -e "tell app"`},
		{"powershell.exe", []string{"-NoProfile"}, "powershell.exe -NoProfile"},
		{"x", []string{""}, `x ""`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, String(tt.name, tt.args...))
	}
}

func TestExecRunnerMissingProgram(t *testing.T) {
	r := &ExecRunner{}
	_, err := r.Run(context.Background(), "definitely-not-a-real-program-autolaunch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locating")
}

func TestExecRunnerCapturesExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	var mirrored bytes.Buffer
	r := &ExecRunner{Stdout: &mirrored}
	out, err := r.Run(context.Background(), "sh", "-c", "echo hello; echo oops >&2; exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, out.ExitCode)
	assert.Equal(t, "hello\n", out.Stdout)
	assert.Equal(t, "oops\n", out.Stderr)
	assert.Equal(t, "hello\n", mirrored.String())
	assert.False(t, out.Success())
}

func TestExecRunnerCanceled(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&ExecRunner{}).Run(ctx, "sh", "-c", "sleep 5")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
