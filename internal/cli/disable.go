package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var disableTarget targetFlags

func init() {
	disableTarget.register(disableCmd)
	rootCmd.AddCommand(disableCmd)
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Stop starting the application at login",
	Long:  `Remove the autostart entry. Removing an entry that does not exist succeeds.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := disableTarget.builder(cmd)
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
		if !s.TryDisable(cmd.Context()) {
			return s.TakeLastError()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Disabled %s via %s\n", plan.Spec.AppName, plan.Engine)
		return nil
	},
}
