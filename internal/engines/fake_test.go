package engines

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/agentx-labs/autolaunch/internal/command"
)

// scriptedRunner emulates an interpreter: respond sees the last argument
// (the script) and returns the process result.
type scriptedRunner struct {
	mu      sync.Mutex
	calls   [][]string
	respond func(script string) (*command.Output, error)
}

func (r *scriptedRunner) Run(_ context.Context, name string, args ...string) (*command.Output, error) {
	r.mu.Lock()
	r.calls = append(r.calls, append([]string{name}, args...))
	r.mu.Unlock()

	script := ""
	if len(args) > 0 {
		script = args[len(args)-1]
	}
	if r.respond == nil {
		return &command.Output{}, nil
	}
	return r.respond(script)
}

func (r *scriptedRunner) scripts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, c[len(c)-1])
	}
	return out
}

// loginItems fakes System Events: a set of login item names.
type loginItems struct {
	items map[string]bool
}

func newLoginItems() *loginItems {
	return &loginItems{items: map[string]bool{}}
}

func (l *loginItems) respond(script string) (*command.Output, error) {
	const prefix = `tell application "System Events" to `
	body := strings.TrimPrefix(script, prefix)
	switch {
	case strings.HasPrefix(body, "exists login item "):
		name := unquoteAS(strings.TrimPrefix(body, "exists login item "))
		if l.items[name] {
			return &command.Output{Stdout: "true\n"}, nil
		}
		return &command.Output{Stdout: "false\n"}, nil
	case strings.HasPrefix(body, "delete login item "):
		delete(l.items, unquoteAS(strings.TrimPrefix(body, "delete login item ")))
		return &command.Output{}, nil
	case strings.HasPrefix(body, "make login item"):
		start := strings.Index(body, "name:") + len("name:")
		end := strings.Index(body, ", path:")
		l.items[unquoteAS(body[start:end])] = true
		return &command.Output{Stdout: "login item x\n"}, nil
	}
	return &command.Output{ExitCode: 1, Stderr: "syntax error"}, nil
}

func unquoteAS(s string) string {
	s = strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
	s = strings.ReplaceAll(s, `\"`, `"`)
	return strings.ReplaceAll(s, `\\`, `\`)
}

// scheduledTasks fakes the ScheduledTasks module. Tasks are keyed by
// their -TaskPath, and Register with -Force replaces an existing one.
type scheduledTasks struct {
	tasks map[string]bool
}

var taskPathArg = regexp.MustCompile(`-TaskPath '((?:[^']|'')*)'`)

func (s *scheduledTasks) respond(script string) (*command.Output, error) {
	m := taskPathArg.FindStringSubmatch(script)
	if m == nil {
		return &command.Output{ExitCode: 1, Stderr: "missing -TaskPath"}, nil
	}
	key := strings.ReplaceAll(m[1], "''", "'")
	if s.tasks == nil {
		s.tasks = map[string]bool{}
	}
	switch {
	case strings.Contains(script, "Register-ScheduledTask") && !strings.Contains(script, "Unregister-"):
		s.tasks[key] = true
		return &command.Output{}, nil
	case strings.Contains(script, "Unregister-ScheduledTask"):
		delete(s.tasks, key)
		return &command.Output{}, nil
	case strings.Contains(script, "Write-Output"):
		if s.tasks[key] {
			return &command.Output{Stdout: "True\r\n"}, nil
		}
		return &command.Output{Stdout: "False\r\n"}, nil
	}
	return &command.Output{ExitCode: 1}, nil
}
