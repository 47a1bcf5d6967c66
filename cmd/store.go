package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/app"
)

var (
	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	storeCmd = &cobra.Command{
		Use:   "store {user}",
		Short: "Show today's store rotation for one of a user's accounts",
		Long: `Logs the account in and prints the four single-item offers of today's
store rotation, localized to the user's language.

The offer list is fetched from Riot at most once per account per day;
repeated calls on the same day are answered from the stored log.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			accountID, _ := cmd.Flags().GetString("account")

			app.ExecuteStoreCommand(cmd.Context(), appConfig, args[0], accountID)
		},
	}

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rankCmd = &cobra.Command{
		Use:   "rank {user}",
		Short: "Show the competitive rank of one of a user's accounts",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			accountID, _ := cmd.Flags().GetString("account")

			app.ExecuteRankCommand(cmd.Context(), appConfig, args[0], accountID)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	storeCmd.Flags().StringP("account", "a", "", "account record id to check.")
	rankCmd.Flags().StringP("account", "a", "", "account record id to check.")

	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(rankCmd)
}
