package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/app"
)

var (
	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	notifyCmd = &cobra.Command{
		Use:   "notify",
		Short: "Daily store notification commands",
		Long: `Manage daily store notifications.

Use 'notify subscribe' to pick the hour and timezone a user is notified at,
and 'notify run' to start the delivery loop.`,
	}

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	notifySubscribeCmd = &cobra.Command{
		Use:   "subscribe {user}",
		Short: "Subscribe a user to a daily store notification",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			accountID, _ := cmd.Flags().GetString("account")
			timezone, _ := cmd.Flags().GetString("timezone")
			hour, _ := cmd.Flags().GetInt("hour")

			app.ExecuteNotifySubscribeCommand(cmd.Context(), appConfig, args[0], accountID, timezone, hour)
		},
	}

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	notifyRunCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the notification delivery loop",
		Long: `Sweeps subscribed users at the configured interval and delivers each
user's daily store once their local notification hour arrives. Runs until
interrupted.`,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteNotifyRunCommand(cmd.Context(), appConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	notifySubscribeCmd.Flags().StringP("account", "a", "", "account record id to deliver the store of.")
	notifySubscribeCmd.Flags().StringP("timezone", "t", "Asia/Tokyo", "IANA timezone of the user.")
	notifySubscribeCmd.Flags().IntP("hour", "H", 9, "local hour (0-23) to deliver at.")

	notifyCmd.AddCommand(notifySubscribeCmd)
	notifyCmd.AddCommand(notifyRunCmd)

	rootCmd.AddCommand(notifyCmd)
}
