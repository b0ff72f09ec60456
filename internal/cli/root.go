package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/autolaunch/internal/branding"
	"github.com/agentx-labs/autolaunch/internal/config"
	"github.com/agentx-labs/autolaunch/internal/logging"
	"github.com/agentx-labs/autolaunch/internal/styles"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	envFile   string
	logLevel  string
	logFormat string

	settings config.Settings
	logger   *slog.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment variables from a dotenv file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json (default from config)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` registers an application to start when the user logs in, using the
native mechanism of the current OS: the Run registry key, the Startup folder or
Task Scheduler on Windows, XDG autostart entries on Linux, and launch agents or
login items on macOS.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnvFile(envFile); err != nil {
			return err
		}
		config.Load()

		var err error
		settings, err = config.Read()
		// A broken setting must stay fixable through "config set".
		if err != nil && cmd.Parent() != configCmd {
			return &usageError{err: fmt.Errorf("reading %s: %w", config.FilePath(), err)}
		}

		level, format := settings.Log.Level, settings.Log.Format
		if logLevel != "" {
			level = logLevel
		}
		if logFormat != "" {
			format = logFormat
		}
		logger = logging.New(level, format, cmd.ErrOrStderr())
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "%s %v\n", styles.Fail.Render("Error:"), err)
	}
	return ExitCode(err)
}
