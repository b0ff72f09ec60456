package cli

import (
	"github.com/spf13/cobra"

	"github.com/agentx-labs/autolaunch/internal/autolaunch"
	"github.com/agentx-labs/autolaunch/internal/launcher"
	"github.com/agentx-labs/autolaunch/internal/manifest"
	"github.com/agentx-labs/autolaunch/internal/platform"
)

// builderOptions are prepended to every builder the CLI creates.
var builderOptions []autolaunch.Option

// targetFlags describe the application a command acts on. Values come from
// the config file, then a launch-spec file, then explicit flags.
type targetFlags struct {
	file        string
	name        string
	path        string
	args        []string
	scope       string
	engine      string
	identifiers []string
	extraConfig string
	auto        bool
}

func (f *targetFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "Launch-spec YAML file")
	fl.StringVar(&f.name, "name", "", "Application name")
	fl.StringVar(&f.path, "path", "", "Absolute path of the program to start")
	fl.StringArrayVar(&f.args, "arg", nil, "Argument passed at startup (repeatable)")
	fl.StringVar(&f.scope, "scope", "", "Work scope: current-user or all-users")
	fl.StringVar(&f.engine, "engine", "", "Engine for the current OS (e.g. registry, task-scheduler, apple-script)")
	fl.StringArrayVar(&f.identifiers, "identifier", nil, "Bundle identifier (repeatable, macOS launch agents)")
	fl.StringVar(&f.extraConfig, "extra-config", "", "Extra desktop-entry or plist fragment")
	fl.BoolVar(&f.auto, "auto", false, "Use the path and name of this executable")
}

// builder assembles an autolaunch.Builder for the target.
func (f *targetFlags) builder(cmd *cobra.Command) (*autolaunch.Builder, error) {
	opts := append([]autolaunch.Option{autolaunch.WithLogger(logger)}, builderOptions...)
	b := autolaunch.New(opts...).
		SetWorkScope(settings.Scope).
		SetWindowsEngine(settings.Engines.Windows).
		SetLinuxEngine(settings.Engines.Linux).
		SetMacOSEngine(settings.Engines.MacOS)

	if f.file != "" {
		file, err := manifest.Load(f.file)
		if err != nil {
			return nil, err
		}
		b.FromSpec(file.Spec())
	}
	if f.auto {
		b.Automatic()
	}

	fl := cmd.Flags()
	if fl.Changed("name") {
		b.SetAppName(f.name)
	}
	if fl.Changed("path") {
		b.SetAppPath(f.path)
	}
	if fl.Changed("arg") {
		b.SetArgs(f.args...)
	}
	if fl.Changed("identifier") {
		b.SetIdentifiers(f.identifiers...)
	}
	if fl.Changed("extra-config") {
		b.SetExtraConfig(f.extraConfig)
	}
	if fl.Changed("scope") {
		scope, err := launcher.ParseWorkScope(f.scope)
		if err != nil {
			return nil, &usageError{err: err}
		}
		b.SetWorkScope(scope)
	}
	if fl.Changed("engine") {
		if err := setEngine(b, f.engine); err != nil {
			return nil, &usageError{err: err}
		}
	}
	return b, nil
}

// setEngine applies --engine to the running OS family.
func setEngine(b *autolaunch.Builder, name string) error {
	switch platform.Current() {
	case platform.Windows:
		e, err := launcher.ParseWindowsEngine(name)
		if err != nil {
			return err
		}
		b.SetWindowsEngine(e)
	case platform.Linux:
		e, err := launcher.ParseLinuxEngine(name)
		if err != nil {
			return err
		}
		b.SetLinuxEngine(e)
	case platform.MacOS:
		e, err := launcher.ParseMacOSEngine(name)
		if err != nil {
			return err
		}
		b.SetMacOSEngine(e)
	default:
		return usagef("--engine is not supported on this OS")
	}
	return nil
}
