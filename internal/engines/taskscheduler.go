package engines

import (
	"context"
	"fmt"
	"strings"

	"github.com/agentx-labs/autolaunch/internal/branding"
	"github.com/agentx-labs/autolaunch/internal/cmdline"
	"github.com/agentx-labs/autolaunch/internal/command"
	"github.com/agentx-labs/autolaunch/internal/launcher"
)

// PowerShell is the interpreter the task-scheduler engine invokes.
const PowerShell = "powershell.exe"

var powerShellFlags = []string{"-NonInteractive", "-NoProfile", "-ExecutionPolicy", "Bypass", "-Command"}

// TaskScheduler registers a logon-triggered scheduled task through the
// ScheduledTasks PowerShell module.
type TaskScheduler struct {
	spec launcher.LaunchSpec
	host scriptHost
}

// NewTaskScheduler builds the engine. A nil runner executes real processes.
func NewTaskScheduler(spec launcher.LaunchSpec, runner command.Runner) *TaskScheduler {
	return &TaskScheduler{
		spec: spec.Clone(),
		host: scriptHost{
			runner:        defaultRunner(runner),
			name:          PowerShell,
			flags:         powerShellFlags,
			deniedMarkers: []string{"0x80070005", "Access is denied"},
		},
	}
}

func (t *TaskScheduler) Name() string { return "windows-task-scheduler" }

// TaskPath is the scheduler folder holding the task.
func (t *TaskScheduler) TaskPath() string {
	return `\` + t.spec.AppName + `\`
}

func (t *TaskScheduler) taskName() string {
	// $env:USERNAME is expanded by PowerShell, so the literal is built with
	// double quotes around the variable part only.
	return psQuote(branding.TaskFolder()+" for ") + ` + $env:USERNAME`
}

func (t *TaskScheduler) selector() string {
	return fmt.Sprintf("-TaskPath %s -TaskName (%s)", psQuote(t.TaskPath()), t.taskName())
}

func (t *TaskScheduler) Enable(ctx context.Context) error {
	action := "New-ScheduledTaskAction -Execute " + psQuote(t.spec.AppPath)
	if len(t.spec.Args) > 0 {
		action += " -Argument " + psQuote(cmdline.Join(t.spec.Args))
	}
	lines := []string{
		"$action = " + action,
		"$trigger = New-ScheduledTaskTrigger -AtLogOn -User $env:USERNAME",
		"$settings = New-ScheduledTaskSettingsSet -AllowStartIfOnBatteries -DontStopIfGoingOnBatteries -ExecutionTimeLimit 0",
		"Register-ScheduledTask " + t.selector() +
			" -Action $action -Trigger $trigger -Settings $settings -RunLevel Highest -Force | Out-Null",
	}
	_, err := t.host.run(ctx, strings.Join(lines, "; "))
	return err
}

func (t *TaskScheduler) Disable(ctx context.Context) error {
	script := fmt.Sprintf(
		"$task = Get-ScheduledTask %s -ErrorAction SilentlyContinue; if ($task) { Unregister-ScheduledTask %s -Confirm:$false }",
		t.selector(), t.selector())
	_, err := t.host.run(ctx, script)
	return err
}

func (t *TaskScheduler) Status(ctx context.Context) (bool, error) {
	script := fmt.Sprintf(
		"$task = Get-ScheduledTask %s -ErrorAction SilentlyContinue; if ($task) { Write-Output 'True' } else { Write-Output 'False' }",
		t.selector())
	out, err := t.host.run(ctx, script)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(out, "true"), nil
}

// psQuote renders s as a single-quoted PowerShell literal.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
