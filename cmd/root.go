package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/config"
	"github.com/opiscesdev/valorant-store-bot-checker/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "valorant-store-bot-checker",
		Short: "Check Valorant daily stores and ranks for registered accounts.",
		Long: `Valorant Store Bot Checker logs registered Riot accounts in through a
proxy pool and reads their daily store rotation and competitive rank.

Accounts are registered per user and kept in Redis. Users can subscribe to a
daily notification of their store at a local hour of their choice.`,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	persistentFlags := rootCmd.PersistentFlags()

	persistentFlags.StringP(
		"proxies",
		"p",
		"",
		"path to the proxy list, one host:port:user:pass per line.")

	persistentFlags.StringP(
		"redis-addr",
		"r",
		"",
		"redis address, for example: localhost:6379.")

	persistentFlags.StringP(
		"region",
		"",
		"",
		"riot shard the accounts play on: ap, br, eu, kr, latam or na.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("proxies"); flag != nil && flag.Changed {
		cfg.ProxiesPath, _ = flags.GetString("proxies")
	}

	if flag := flags.Lookup("redis-addr"); flag != nil && flag.Changed {
		cfg.RedisAddr, _ = flags.GetString("redis-addr")
	}

	if flag := flags.Lookup("region"); flag != nil && flag.Changed {
		cfg.Region, _ = flags.GetString("region")
	}

	return config.ValidateConfig(cfg)
}
