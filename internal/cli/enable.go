package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var enableTarget targetFlags

func init() {
	enableTarget.register(enableCmd)
	rootCmd.AddCommand(enableCmd)
}

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Start the application at login",
	Long: `Create (or overwrite) the autostart entry for the application.

The target is described by --file, by flags, or both (flags win):

  autolaunch enable --name notes --path /opt/notes/notes --arg --hidden
  autolaunch enable -f notes.yaml --scope all-users`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := enableTarget.builder(cmd)
		if err != nil {
			return err
		}
		plan, err := b.Plan()
		if err != nil {
			return err
		}
		s, err := b.BuildSafe()
		if err != nil {
			return err
		}
		if !s.TryEnable(cmd.Context()) {
			return s.TakeLastError()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Enabled %s via %s (%s)\n", plan.Spec.AppName, plan.Engine, plan.Location)
		return nil
	},
}
