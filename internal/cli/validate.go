package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/autolaunch/internal/autolaunch"
	"github.com/agentx-labs/autolaunch/internal/manifest"
	"github.com/agentx-labs/autolaunch/internal/styles"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check launch-spec files without touching the system",
	Long: `Validate launch-spec files against the schema and the builder's rules
(required name and path, absolute path). Nothing is registered.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		var failed []error
		for _, path := range args {
			if err := validateFile(path); err != nil {
				fmt.Fprintf(out, "%s %s\n", styles.FailTag(), path)
				var ie *manifest.InvalidError
				if errors.As(err, &ie) {
					for _, issue := range ie.Issues {
						fmt.Fprintf(out, "  %s\n", issue)
					}
				} else {
					fmt.Fprintf(out, "  %v\n", err)
				}
				failed = append(failed, err)
				continue
			}
			fmt.Fprintf(out, "%s %s\n", styles.OKTag(), path)
		}
		if len(failed) > 0 {
			return fmt.Errorf("%d of %d files invalid: %w", len(failed), len(args), errors.Join(failed...))
		}
		return nil
	},
}

func validateFile(path string) error {
	f, err := manifest.Load(path)
	if err != nil {
		return err
	}
	_, err = autolaunch.New().FromSpec(f.Spec()).Spec()
	return err
}
