package engines

import (
	"bytes"
	"context"
	"encoding/xml"
	"strings"
	"text/template"

	"github.com/agentx-labs/autolaunch/internal/launcher"
	"github.com/agentx-labs/autolaunch/internal/platform"
)

var plistTemplate = template.Must(template.New("plist").Funcs(template.FuncMap{
	"xml": xmlText,
}).Parse(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>{{xml .Label}}</string>
	<key>AssociatedBundleIdentifiers</key>
	<array>
{{- range .Identifiers}}
		<string>{{xml .}}</string>
{{- end}}
	</array>
	<key>ProgramArguments</key>
	<array>
{{- range .Program}}
		<string>{{xml .}}</string>
{{- end}}
	</array>
	<key>RunAtLoad</key>
	<true/>
{{- with .Extra}}
{{.}}
{{- end}}
</dict>
</plist>
`))

// LaunchAgent writes a launchd agent plist. The file is named after the
// first identifier when one is configured, otherwise after AppName; changing
// identifiers between builds leaves the old file behind.
type LaunchAgent struct {
	spec     launcher.LaunchSpec
	artifact fileArtifact
}

// NewLaunchAgent builds the engine for the given LaunchAgents directory.
func NewLaunchAgent(spec launcher.LaunchSpec, dir string) *LaunchAgent {
	spec = spec.Clone()
	return &LaunchAgent{
		spec:     spec,
		artifact: fileArtifact{dir: dir, name: plistName(spec) + ".plist"},
	}
}

func plistName(spec launcher.LaunchSpec) string {
	if len(spec.Identifiers) > 0 && spec.Identifiers[0] != "" {
		return spec.Identifiers[0]
	}
	return spec.AppName
}

func (l *LaunchAgent) Name() string { return "macos-launch-agent" }

// Path returns the plist location.
func (l *LaunchAgent) Path() string { return l.artifact.path() }

func (l *LaunchAgent) Enable(_ context.Context) error {
	// launchd resolves ProgramArguments[0] without a shell or PATH lookup.
	if !platform.IsAbsFor("darwin", l.spec.AppPath) {
		err := launcher.ValidationError("app path %q is not absolute", l.spec.AppPath)
		err.Op = launcher.OpEnable
		return err
	}
	if name := plistName(l.spec); name == ".." || strings.ContainsAny(name, `/\`) {
		err := launcher.ValidationError("plist name %q is not a plain file name", name)
		err.Op = launcher.OpEnable
		return err
	}
	content, err := l.render()
	if err != nil {
		return err
	}
	return l.artifact.write(content)
}

func (l *LaunchAgent) Disable(_ context.Context) error {
	return l.artifact.remove()
}

func (l *LaunchAgent) Status(_ context.Context) (bool, error) {
	return l.artifact.exists()
}

func (l *LaunchAgent) render() ([]byte, error) {
	program := append([]string{l.spec.AppPath}, l.spec.Args...)
	var buf bytes.Buffer
	err := plistTemplate.Execute(&buf, struct {
		Label       string
		Identifiers []string
		Program     []string
		Extra       string
	}{
		Label:       l.spec.AppName,
		Identifiers: l.spec.Identifiers,
		Program:     program,
		Extra:       strings.TrimRight(l.spec.ExtraConfig, "\n"),
	})
	return buf.Bytes(), err
}

func xmlText(s string) (string, error) {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return "", err
	}
	return b.String(), nil
}
