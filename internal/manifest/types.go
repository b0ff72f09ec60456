package manifest

import "github.com/agentx-labs/autolaunch/internal/launcher"

// File is the on-disk shape of a launch spec.
type File struct {
	SchemaVersion string           `yaml:"schema_version" json:"schema_version"`
	Name          string           `yaml:"name" json:"name"`
	Path          string           `yaml:"path" json:"path"`
	Args          []string         `yaml:"args,omitempty" json:"args,omitempty"`
	Scope         string           `yaml:"scope,omitempty" json:"scope,omitempty"`
	Engines       launcher.Engines `yaml:"engines,omitempty" json:"engines,omitempty"`
	Identifiers   []string         `yaml:"identifiers,omitempty" json:"identifiers,omitempty"`
	ExtraConfig   string           `yaml:"extra_config,omitempty" json:"extra_config,omitempty"`
}

// Spec converts the file into a LaunchSpec. Empty scope and engine entries
// are left empty for the builder to default.
func (f *File) Spec() launcher.LaunchSpec {
	return launcher.LaunchSpec{
		AppName:     f.Name,
		AppPath:     f.Path,
		Args:        append([]string(nil), f.Args...),
		Scope:       launcher.WorkScope(f.Scope),
		Engines:     f.Engines,
		Identifiers: append([]string(nil), f.Identifiers...),
		ExtraConfig: f.ExtraConfig,
	}
}
