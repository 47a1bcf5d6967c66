package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/config"
)

const testBaseConfigContent = `
proxies_path: "/config/proxies.txt"
redis_addr: "localhost:6379"
region: "ap"
default_language: "ja-JP"
log_level: "info"
`

// TestFlagOverrides tests that command-line flags correctly override configuration file values.
//
//nolint:tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name           string
		flags          map[string]string
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name:  "no flags - use config values",
			flags: map[string]string{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "/config/proxies.txt", cfg.ProxiesPath)
				assert.Equal(t, "localhost:6379", cfg.RedisAddr)
				assert.Equal(t, "ap", cfg.Region)
			},
		},
		{
			name: "proxies flag only - override proxy list",
			flags: map[string]string{
				"proxies": "/flag/proxies.txt",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "/flag/proxies.txt", cfg.ProxiesPath)
				assert.Equal(t, "localhost:6379", cfg.RedisAddr)
				assert.Equal(t, "ap", cfg.Region)
			},
		},
		{
			name: "redis-addr flag only - override redis address",
			flags: map[string]string{
				"redis-addr": "redis.internal:6380",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "/config/proxies.txt", cfg.ProxiesPath)
				assert.Equal(t, "redis.internal:6380", cfg.RedisAddr)
			},
		},
		{
			name: "region flag only - override region",
			flags: map[string]string{
				"region": "eu",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "eu", cfg.Region)
				assert.Equal(t, "https://pd.eu.a.pvp.net", cfg.PlayerDataBaseURL)
			},
		},
		{
			name: "all flags - override everything",
			flags: map[string]string{
				"proxies":    "/all/proxies.txt",
				"redis-addr": "redis.all:6379",
				"region":     "na",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "/all/proxies.txt", cfg.ProxiesPath)
				assert.Equal(t, "redis.all:6379", cfg.RedisAddr)
				assert.Equal(t, "na", cfg.Region)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, "test-config.yaml")

			err := os.WriteFile(configPath, []byte(testBaseConfigContent), 0o600)
			require.NoError(t, err)

			cfg, err := config.LoadConfig(configPath)
			require.NoError(t, err)

			// Create a test command with the same flags as the root command.
			testCmd := &cobra.Command{
				Use: "test",
			}

			testCmd.Flags().StringP("proxies", "p", "", "path to the proxy list")
			testCmd.Flags().StringP("redis-addr", "r", "", "redis address")
			testCmd.Flags().StringP("region", "", "", "riot shard")

			for flagName, flagValue := range tt.flags {
				require.NoError(t, testCmd.Flags().Set(flagName, flagValue))
			}

			require.NoError(t, bindFlagsToConfig(testCmd.Flags(), cfg))

			tt.expectedConfig(t, cfg)
		})
	}
}

func TestFlagOverrides_InvalidRegionRejected(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test-config.yaml")

	require.NoError(t, os.WriteFile(configPath, []byte(testBaseConfigContent), 0o600))

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)

	testCmd := &cobra.Command{Use: "test"}
	testCmd.Flags().StringP("region", "", "", "riot shard")
	require.NoError(t, testCmd.Flags().Set("region", "moon"))

	require.ErrorIs(t, bindFlagsToConfig(testCmd.Flags(), cfg), config.ErrUnknownRegion)
}
