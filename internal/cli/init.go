package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/autolaunch/internal/manifest"
	"github.com/agentx-labs/autolaunch/internal/platform"
)

var (
	initTarget targetFlags
	initForce  bool
)

func init() {
	initTarget.register(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <file>",
	Short: "Write a launch-spec file",
	Long: `Write a launch-spec YAML file from flags, to be used later with --file.

  autolaunch init notes.yaml --name notes --path /opt/notes/notes --arg --hidden`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !initForce {
			exists, err := platform.Exists(path)
			if err != nil {
				return err
			}
			if exists {
				return usagef("%s already exists (use --force to overwrite)", path)
			}
		}

		b, err := initTarget.builder(cmd)
		if err != nil {
			return err
		}
		spec, err := b.Spec()
		if err != nil {
			return err
		}

		f := &manifest.File{
			SchemaVersion: manifest.SchemaVersion,
			Name:          spec.AppName,
			Path:          spec.AppPath,
			Args:          spec.Args,
			Scope:         string(spec.Scope),
			Engines:       spec.Engines,
			Identifiers:   spec.Identifiers,
			ExtraConfig:   spec.ExtraConfig,
		}
		data, err := manifest.Marshal(f)
		if err != nil {
			return err
		}
		if err := platform.WriteFile(path, data); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}
