package cli

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/autolaunch/internal/config"
	"github.com/agentx-labs/autolaunch/internal/engines"
	"github.com/agentx-labs/autolaunch/internal/launcher"
	"github.com/agentx-labs/autolaunch/internal/platform"
	"github.com/agentx-labs/autolaunch/internal/styles"
)

var doctorTarget targetFlags

func init() {
	doctorTarget.register(doctorCmd)
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that autostart can work on this machine",
	Long: `Report the OS family, the configured engine, where its entry would live,
and whether the helper programs it drives are installed. Without a target,
the doctor inspects this executable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		family := platform.Current()

		fmt.Fprintln(out, styles.Heading.Render(fmt.Sprintf("%s doctor", cmd.Root().Name())))
		if !launcher.IsSupported() {
			fmt.Fprintf(out, "%s %s/%s has no autostart mechanism\n", styles.FailTag(), runtime.GOOS, runtime.GOARCH)
			return launcher.UnsupportedPlatformError(runtime.GOOS)
		}
		fmt.Fprintf(out, "%s OS family: %s (%s)\n", styles.OKTag(), family, runtime.GOARCH)
		fmt.Fprintf(out, "%s Config file: %s\n", styles.OKTag(), config.FilePath())

		b, err := doctorTarget.builder(cmd)
		if err != nil {
			return err
		}
		if !targetGiven(cmd) {
			b.Automatic()
		}
		plan, err := b.Plan()
		if err != nil {
			fmt.Fprintf(out, "%s Target: %v\n", styles.FailTag(), err)
			return err
		}
		fmt.Fprintf(out, "%s Engine: %s (scope %s)\n", styles.OKTag(), plan.Engine, plan.Spec.Scope)
		fmt.Fprintf(out, "%s Entry: %s\n", styles.OKTag(), plan.Location)

		checkHelper(out, family, plan.Spec.Engines)
		return nil
	},
}

func targetGiven(cmd *cobra.Command) bool {
	fl := cmd.Flags()
	return fl.Changed("file") || fl.Changed("name") || fl.Changed("path")
}

// checkHelper reports whether the interpreter the selected engine shells
// out to is on PATH.
func checkHelper(out io.Writer, family platform.Family, selected launcher.Engines) {
	var helper string
	switch {
	case family == platform.Windows && selected.Windows == launcher.WindowsTaskScheduler:
		helper = engines.PowerShell
	case family == platform.MacOS && selected.MacOS == launcher.MacOSAppleScript:
		helper = engines.OSAScript
	default:
		return
	}
	if path, err := exec.LookPath(helper); err == nil {
		fmt.Fprintf(out, "%s %s: %s\n", styles.OKTag(), helper, path)
		return
	}
	fmt.Fprintf(out, "%s %s not found on PATH\n", styles.WarnTag(), helper)
}
