package cli

import (
	"context"
	"io/fs"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/truverse/taskctl/cmd/cli/publish"
	"github.com/truverse/taskctl/cmd/cli/submit"
	"github.com/truverse/taskctl/cmd/cli/version"
	"github.com/truverse/taskctl/cmd/util"
	"github.com/truverse/taskctl/cmd/util/flags"
	"github.com/truverse/taskctl/pkg/config"
	"github.com/truverse/taskctl/pkg/logger"
	"github.com/truverse/taskctl/pkg/system"
)

func NewRootCmd() *cobra.Command {
	var envFile string
	rootCmd := &cobra.Command{
		Use:   "taskctl",
		Short: "Publish wasm tasks to Truebit and run them",
		Long: `taskctl publishes compiled wasm tasks (IPFS upload, filesystem registration,
task contract deployment) and submits inputs to the deployed task contract.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnvFile(envFile); err != nil {
				return err
			}
			logger.ConfigureLogging(util.LoggingMode)

			ctx := cmd.Context()
			ctx = context.WithValue(ctx, util.SystemManagerKey, system.NewCleanupManager())
			ctx = context.WithValue(ctx, util.ViperKey, config.New())
			cmd.SetContext(ctx)
			return nil
		},
	}

	rootCmd.AddCommand(publish.NewCmd())
	rootCmd.AddCommand(submit.NewCmd())
	rootCmd.AddCommand(version.NewCmd())

	rootCmd.PersistentFlags().String(util.ConfigFlag, "",
		"Config file (yaml, toml or json). Flags and TASKCTL_* environment variables take precedence.")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env",
		"Dotenv file loaded before anything else. Ignored when missing.")
	rootCmd.PersistentFlags().Var(
		flags.LoggingFlag(&util.LoggingMode), "log-mode",
		`Log format: 'default','json','cmd'`,
	)
	return rootCmd
}

// loadEnvFile exports the variables of a dotenv file. Variables already set
// in the environment are kept.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, "loading %s", path)
	}
	return nil
}

func Execute() {
	rootCmd := NewRootCmd()

	// Ensure commands are able to stop cleanly if someone presses ctrl+c
	ctx, cancel := signal.NotifyContext(context.Background(), util.ShutdownSignals...)
	defer cancel()

	// Tables and the task output go to stdout, logs and errors to stderr.
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if cmd == nil {
		cmd = rootCmd
	}
	if cm, ok := util.GetCleanupManagerOK(cmd.Context()); ok {
		if cleanupErr := cm.Cleanup(context.Background()); cleanupErr != nil {
			log.Warn().Err(cleanupErr).Msg("cleanup failed")
		}
	}
	if err != nil {
		cancel()
		util.Fatal(cmd, err, 1)
	}
}
