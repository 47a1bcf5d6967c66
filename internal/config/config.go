package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/opiscesdev/valorant-store-bot-checker/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// ProxiesPath is the path to the flat proxy list (host:port:user:pass per line).
	ProxiesPath string `mapstructure:"proxies_path"`
	// PremiumProxyShare is the fraction of the proxy list reserved for each tier.
	// The first share of the list forms the premium pool, the last share forms
	// the standard pool. The band in between is not used by either tier.
	PremiumProxyShare float64 `mapstructure:"premium_proxy_share"`
	// RedisAddr is the address of the Redis instance holding users and accounts.
	RedisAddr string `mapstructure:"redis_addr"`
	// RedisPassword is the optional Redis password.
	RedisPassword string `mapstructure:"redis_password"`
	// RedisDB is the Redis database number.
	RedisDB int `mapstructure:"redis_db"`
	// Region is the default Riot shard for new accounts (ap, na, eu, kr, latam, br).
	Region string `mapstructure:"region"`
	// DefaultLanguage is the language assigned to new users.
	DefaultLanguage string `mapstructure:"default_language"`
	// MessagesPath is the path to the YAML message catalog.
	MessagesPath string `mapstructure:"messages_path"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// NotifyPollInterval is how often the notifier scans for due users.
	NotifyPollInterval string `mapstructure:"notify_poll_interval"`
	// SkinCacheSize is the maximum number of skin metadata entries kept in memory.
	SkinCacheSize int `mapstructure:"skin_cache_size"`
	// RiotAuthBaseURL is the base URL of the Riot auth service (set automatically).
	RiotAuthBaseURL string
	// RiotEntitlementsBaseURL is the base URL of the entitlements service (set automatically).
	RiotEntitlementsBaseURL string
	// PlayerDataBaseURL is the base URL of the regional player-data service (set automatically).
	PlayerDataBaseURL string
	// CatalogBaseURL is the base URL of the public skin catalog API (set automatically).
	CatalogBaseURL string
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedNotifyPollInterval is the parsed notifier poll interval.
	ParsedNotifyPollInterval time.Duration
}

const (
	// RiotAuthBaseURL is the base URL of the Riot auth service.
	RiotAuthBaseURL = "https://auth.riotgames.com"

	// RiotEntitlementsBaseURL is the base URL of the Riot entitlements service.
	RiotEntitlementsBaseURL = "https://entitlements.auth.riotgames.com"

	// PlayerDataBaseURLTemplate builds the regional player-data host from a shard name.
	PlayerDataBaseURLTemplate = "https://pd.%s.a.pvp.net"

	// CatalogBaseURL is the base URL of the public Valorant catalog API.
	CatalogBaseURL = "https://valorant-api.com"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".valorant-store-bot-checker.yaml"

	// DefaultPremiumProxyShare keeps the historical split: the first quarter of
	// the list is premium, the last quarter is standard, the middle half idle.
	DefaultPremiumProxyShare = 0.25

	// DefaultMaxLogLength is the default maximum size (in bytes) for dumped HTTP payloads.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// maxPremiumProxyShare caps the share so the two tiers stay disjoint.
	maxPremiumProxyShare = 0.5

	// defaultSkinCacheSize fits every skin level currently in the catalog.
	defaultSkinCacheSize = 5000
)

// knownRegions lists the Riot shards with a player-data host.
//
//nolint:gochecknoglobals // This is an immutable set used as a constant for validation purposes.
var knownRegions = map[string]struct{}{
	"ap":    {},
	"br":    {},
	"eu":    {},
	"kr":    {},
	"latam": {},
	"na":    {},
}

// Static error definitions for better error handling.
var (
	// ErrEmptyProxiesPath indicates that the proxy list path is missing.
	ErrEmptyProxiesPath = errors.New("proxies path cannot be empty")
	// ErrInvalidPremiumShare indicates that the premium proxy share is out of range.
	ErrInvalidPremiumShare = errors.New("invalid premium proxy share")
	// ErrEmptyRedisAddr indicates that the Redis address is missing.
	ErrEmptyRedisAddr = errors.New("redis address cannot be empty")
	// ErrUnknownRegion indicates that the configured region has no known shard.
	ErrUnknownRegion = errors.New("unknown region")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidNotifyPollInterval indicates that the notifier poll interval is invalid.
	ErrInvalidNotifyPollInterval = errors.New("notify_poll_interval must be positive")
	// ErrInvalidSkinCacheSize indicates that the skin cache size is invalid.
	ErrInvalidSkinCacheSize = errors.New("skin cache size must be a positive integer")
)

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	var err error

	if strings.TrimSpace(cfg.ProxiesPath) == "" {
		return ErrEmptyProxiesPath
	}

	if cfg.PremiumProxyShare == 0 {
		cfg.PremiumProxyShare = DefaultPremiumProxyShare
	}

	if cfg.PremiumProxyShare < 0 || cfg.PremiumProxyShare > maxPremiumProxyShare {
		return fmt.Errorf("%w: must be in (0, %.1f]", ErrInvalidPremiumShare, maxPremiumProxyShare)
	}

	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return ErrEmptyRedisAddr
	}

	region := strings.ToLower(strings.TrimSpace(cfg.Region))
	if region == "" {
		region = "ap"
	}

	if _, ok := knownRegions[region]; !ok {
		return fmt.Errorf("%w: '%s'", ErrUnknownRegion, cfg.Region)
	}

	cfg.Region = region

	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = "ja-JP"
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	if cfg.NotifyPollInterval == "" {
		cfg.NotifyPollInterval = "1m"
	}

	cfg.ParsedNotifyPollInterval, err = time.ParseDuration(cfg.NotifyPollInterval)
	if err != nil {
		return fmt.Errorf("failed to parse notify poll interval: %w", err)
	}

	if cfg.ParsedNotifyPollInterval <= 0 {
		return ErrInvalidNotifyPollInterval
	}

	if cfg.SkinCacheSize == 0 {
		cfg.SkinCacheSize = defaultSkinCacheSize
	}

	if cfg.SkinCacheSize < 0 {
		return ErrInvalidSkinCacheSize
	}

	cfg.RiotAuthBaseURL = RiotAuthBaseURL
	cfg.RiotEntitlementsBaseURL = RiotEntitlementsBaseURL
	cfg.PlayerDataBaseURL = fmt.Sprintf(PlayerDataBaseURLTemplate, cfg.Region)
	cfg.CatalogBaseURL = CatalogBaseURL

	return nil
}
