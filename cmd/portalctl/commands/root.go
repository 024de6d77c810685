package commands

import (
	"alumni_portal/configs"
	"alumni_portal/internal/db"
	"alumni_portal/internal/di"
	"fmt"
	"os"

	"github.com/go-pg/pg/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	config configs.PortalCtlConfig
	logger *zap.SugaredLogger

	// Global flags
	migrationsDir string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "portalctl",
	Short: "Operator tool for the alumni portal",
	Long: `portalctl runs maintenance tasks against the alumni portal database.

Configuration is read from the environment and an optional .env file,
the same way the portal services read it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		config, err = configs.LoadPortalCtlConfig()
		if err != nil {
			return err
		}

		if migrationsDir != "" {
			config.DB.MigrationsDir = migrationsDir
		}

		logger = di.NewLogger(config.Logger, config.App)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&migrationsDir, "migrations-dir", "", "Directory with SQL migrations (overrides MIGRATIONS_DIR)")
}

func connect(cmd *cobra.Command) (*pg.DB, error) {
	return db.Connect(cmd.Context(), config.DB, logger)
}
