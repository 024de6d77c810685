package commands

import (
	"alumni_portal/internal/db/repositories"
	"alumni_portal/internal/identity"
	"alumni_portal/internal/notifier"
	"alumni_portal/internal/services"
	"encoding/json"

	"github.com/spf13/cobra"
)

var (
	// Promote flags
	threshold int
)

// promoteCmd runs the promotion job once
var promoteCmd = &cobra.Command{
	Use:   "promote",
	Short: "Promote suggestions that reached the vote threshold",
	Long: `Run the promotion job once and print the ids of the promoted suggestions.

Announcements go to the configured Telegram and Discord channels.

Examples:
  portalctl promote                 # Use PROMOTION_VOTE_THRESHOLD
  portalctl promote --threshold 3   # Override the threshold for this run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		promotion := config.Promotion
		if cmd.Flags().Changed("threshold") {
			promotion.VoteThreshold = threshold
		}

		if err := services.ValidatePromotionConfig(promotion); err != nil {
			return err
		}

		database, err := connect(cmd)
		if err != nil {
			return err
		}
		defer database.Close()

		service := services.NewPromotionService(
			repositories.NewSuggestionRepository(database),
			notifier.FromConfig(config.App, config.Telegram, config.Discord, logger),
			promotion,
			logger,
		)

		promoted, err := service.Run(cmd.Context(), identity.Service())
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string][]string{"promoted": promoted})
	},
}

func init() {
	rootCmd.AddCommand(promoteCmd)

	promoteCmd.Flags().IntVar(&threshold, "threshold", 0, "Votes required for promotion")
}
