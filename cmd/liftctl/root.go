package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/liftdesk/internal/app"
	"github.com/MrJamesThe3rd/liftdesk/internal/config"
	"github.com/MrJamesThe3rd/liftdesk/internal/logging"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "liftctl",
	Short: "Operate the LiftDesk back office from the command line",
	Long: `liftctl runs the maintenance jobs of the LiftDesk back office:
database migrations, the status sweep, spreadsheet imports and reference allocation.

Configuration is read from the environment (and a .env file when present),
the same variables the API server uses.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error

		cfg, err = config.Load()
		if err != nil {
			return err
		}

		verbose, _ := cmd.Flags().GetBool("verbose")

		level := cfg.App.LogLevel
		if verbose {
			level = "debug"
		}

		logging.Setup(os.Stderr, logging.Options{Level: level, AppName: "liftctl"})

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level")
}

func openApp(ctx context.Context) (*app.App, error) {
	return app.New(ctx, cfg)
}
