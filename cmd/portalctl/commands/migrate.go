package commands

import (
	"alumni_portal/internal/db"
	"fmt"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate [init|up|down|reset|version|set_version <n>]",
	Short: "Run database migrations",
	Long: `Run the SQL migrations found in the migrations directory.

Examples:
  portalctl migrate init      # Create the migrations table
  portalctl migrate up        # Apply pending migrations
  portalctl migrate down      # Roll back the last migration
  portalctl migrate version   # Print the current version`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"up"}
		}

		database, err := connect(cmd)
		if err != nil {
			return err
		}
		defer database.Close()

		oldVersion, newVersion, err := db.Migrate(database, config.DB.MigrationsDir, logger, args...)
		if err != nil {
			return err
		}

		if oldVersion == newVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "version is %d\n", newVersion)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "migrated from version %d to %d\n", oldVersion, newVersion)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
