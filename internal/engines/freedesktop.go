package engines

import (
	"bytes"
	"context"
	"strings"
	"text/template"

	"github.com/agentx-labs/autolaunch/internal/launcher"
)

var desktopEntry = template.Must(template.New("desktop").Parse(`[Desktop Entry]
Type=Application
Name={{.Name}}
Exec={{.Exec}}
StartupNotify=false
Terminal=false
Comment={{.Name}} startup
{{- with .Extra}}
{{.}}
{{- end}}
`))

// Freedesktop writes an XDG autostart desktop entry.
type Freedesktop struct {
	spec     launcher.LaunchSpec
	artifact fileArtifact
}

// NewFreedesktop builds the engine for the given autostart directory.
func NewFreedesktop(spec launcher.LaunchSpec, dir string) *Freedesktop {
	spec = spec.Clone()
	return &Freedesktop{
		spec:     spec,
		artifact: fileArtifact{dir: dir, name: spec.AppName + ".desktop"},
	}
}

func (f *Freedesktop) Name() string { return "linux-freedesktop" }

// Path returns the desktop entry location.
func (f *Freedesktop) Path() string { return f.artifact.path() }

func (f *Freedesktop) Enable(_ context.Context) error {
	content, err := f.render()
	if err != nil {
		return err
	}
	return f.artifact.write(content)
}

func (f *Freedesktop) Disable(_ context.Context) error {
	return f.artifact.remove()
}

func (f *Freedesktop) Status(_ context.Context) (bool, error) {
	return f.artifact.exists()
}

func (f *Freedesktop) render() ([]byte, error) {
	var buf bytes.Buffer
	err := desktopEntry.Execute(&buf, struct {
		Name  string
		Exec  string
		Extra string
	}{
		Name:  f.spec.AppName,
		Exec:  desktopExec(f.spec.AppPath, f.spec.Args),
		Extra: strings.TrimRight(f.spec.ExtraConfig, "\n"),
	})
	return buf.Bytes(), err
}

// desktopReserved are the characters that force an Exec argument into
// double quotes.
const desktopReserved = " \t\n\"'\\><~|&;$*?#()`"

// desktopExec renders an Exec value. Arguments are quoted by the Exec
// rules, then the whole value gets string escaping, and a bare % is
// doubled so it is not read as a field code.
func desktopExec(program string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, desktopQuote(program))
	for _, a := range args {
		if a != "" && !strings.ContainsAny(a, desktopReserved) {
			parts = append(parts, a)
			continue
		}
		parts = append(parts, desktopQuote(a))
	}
	exec := strings.Join(parts, " ")
	exec = strings.ReplaceAll(exec, `\`, `\\`)
	exec = strings.ReplaceAll(exec, "\n", `\n`)
	exec = strings.ReplaceAll(exec, "\t", `\t`)
	return strings.ReplaceAll(exec, "%", "%%")
}

// desktopQuote wraps s in double quotes, backslash-escaping the characters
// that keep their meaning inside them.
func desktopQuote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '`', '$', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
