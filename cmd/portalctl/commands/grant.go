package commands

import (
	"alumni_portal/internal/db/models"
	"alumni_portal/internal/db/repositories"
	"alumni_portal/internal/identity"
	"alumni_portal/internal/services"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Grant flags
	verified bool
)

// grantCmd changes the role of an existing profile
var grantCmd = &cobra.Command{
	Use:   "grant <email> <member|organizer|admin>",
	Short: "Set the role of a profile",
	Long: `Set the role and verification flag of the profile registered with email.

Examples:
  portalctl grant ada@alumni.example admin --verified
  portalctl grant bob@alumni.example member`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role := models.ProfileRole(args[1])
		if !role.IsValid() {
			return fmt.Errorf("unknown role %q", args[1])
		}

		database, err := connect(cmd)
		if err != nil {
			return err
		}
		defer database.Close()

		profiles := services.NewProfileService(repositories.NewProfileRepository(database), logger)

		profile, err := profiles.Grant(cmd.Context(), identity.Service(), args[0], role, verified)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s (verified: %t)\n", profile.Email, profile.Role.CapitalizedString(), profile.Verified)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(grantCmd)

	grantCmd.Flags().BoolVar(&verified, "verified", false, "Mark the profile as verified")
}
