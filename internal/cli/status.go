package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/autolaunch/internal/launcher"
	"github.com/agentx-labs/autolaunch/internal/styles"
)

var (
	statusTarget  targetFlags
	statusJSON    bool
	statusTimeout time.Duration
)

func init() {
	statusTarget.register(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Print status as JSON")
	statusCmd.Flags().DurationVar(&statusTimeout, "timeout", 30*time.Second, "Give up waiting on the OS after this long")
	rootCmd.AddCommand(statusCmd)
}

type statusReport struct {
	Name     string `json:"name"`
	Engine   string `json:"engine"`
	Location string `json:"location"`
	Enabled  bool   `json:"enabled"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether the application starts at login",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := statusTarget.builder(cmd)
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

		ctx, cancel := context.WithTimeout(cmd.Context(), statusTimeout)
		defer cancel()

		var res launcher.TryStatusResult
		select {
		case res = <-s.TryStatusAsync(ctx):
		case <-ctx.Done():
			return fmt.Errorf("querying status: %w", ctx.Err())
		}
		if !res.OK {
			return s.TakeLastError()
		}

		report := statusReport{
			Name:     plan.Spec.AppName,
			Engine:   plan.Engine,
			Location: plan.Location,
			Enabled:  res.Enabled,
		}
		out := cmd.OutOrStdout()
		if statusJSON {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling status: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		const width = 9
		fmt.Fprintln(out, styles.KeyValue("name", report.Name, width))
		fmt.Fprintln(out, styles.KeyValue("engine", report.Engine, width))
		fmt.Fprintln(out, styles.KeyValue("location", report.Location, width))
		fmt.Fprintln(out, styles.KeyValue("status", styles.Enabled(report.Enabled), width))
		return nil
	},
}
