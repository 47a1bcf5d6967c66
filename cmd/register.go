package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/app"
)

//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
var registerCmd = &cobra.Command{
	Use:   "register {user} {username} {password}",
	Short: "Register Riot credentials as a new account for a user",
	Long: `Stores a Riot username and password as a new account belonging to the
given user. The user record is created on first registration.

The account's stable player id and game name are learned on the first
successful login, not at registration time.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		app.ExecuteRegisterCommand(cmd.Context(), appConfig, args[0], args[1], args[2])
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(registerCmd)
}
