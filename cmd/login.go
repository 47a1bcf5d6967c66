package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/app"
)

//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
var loginCmd = &cobra.Command{
	Use:   "login {user}",
	Short: "Log one of a user's accounts into Riot",
	Long: `Performs the full authentication handshake for one of the user's
registered accounts through a proxy matching the user's plan, and reports
the learned game name and player id.

Without --account the user's first registered account is used.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		accountID, _ := cmd.Flags().GetString("account")

		app.ExecuteLoginCommand(cmd.Context(), appConfig, args[0], accountID)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	loginCmd.Flags().StringP("account", "a", "", "account record id to log in.")

	rootCmd.AddCommand(loginCmd)
}
