package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/liftdesk/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Example: `  # Apply everything pending
  liftctl migrate

  # Roll back the last migration
  liftctl migrate --down 1`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().Int("down", 0, "Roll back this many migrations instead of migrating up")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	down, _ := cmd.Flags().GetInt("down")

	db, err := database.New(cfg.ConnectionString(), database.Options{MaxOpenConns: 2, MaxIdleConns: 1})
	if err != nil {
		return err
	}
	defer db.Close()

	if down > 0 {
		err = database.MigrateDown(db, down)
	} else {
		err = database.Migrate(db)
	}

	if err != nil {
		return err
	}

	version, dirty, err := database.Version(db)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty=%t)\n", version, dirty)

	return nil
}
