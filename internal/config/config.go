package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/samvad-hq/football-stats/pkg/footballapi"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	APIBaseURL        string        `mapstructure:"football_api_base_url"`
	APIKey            string        `mapstructure:"football_api_key"`
	APIKeyHeader      string        `mapstructure:"football_api_key_header"`
	APIHost           string        `mapstructure:"football_api_host"`
	APITimeoutSeconds int64         `mapstructure:"football_api_timeout_seconds"`
	APITimeout        time.Duration `mapstructure:"-"`
	HTTPTracing       bool          `mapstructure:"http_tracing_enabled"`
	// AllowPlaceholderKey lets the process start without a real key. Calls will
	// still be rejected upstream.
	AllowPlaceholderKey bool `mapstructure:"allow_placeholder_api_key"`

	FeedsFile           string        `mapstructure:"feeds_file"`
	PublishersFile      string        `mapstructure:"publishers_file"`
	PollIntervalSeconds int64         `mapstructure:"poll_interval"`
	PollInterval        time.Duration `mapstructure:"-"`
	PollConcurrency     int           `mapstructure:"poll_concurrency"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("app_name", "football-stats")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("football_api_base_url", footballapi.DefaultBaseURL)
	v.SetDefault("football_api_key", "")
	v.SetDefault("football_api_key_header", footballapi.DefaultAPIKeyHeader)
	v.SetDefault("football_api_host", "")
	v.SetDefault("football_api_timeout_seconds", 0) // transport default
	v.SetDefault("http_tracing_enabled", false)
	v.SetDefault("allow_placeholder_api_key", false)
	v.SetDefault("feeds_file", "./configs/feeds.yaml")
	v.SetDefault("publishers_file", "./configs/publishers.yaml")
	v.SetDefault("poll_interval", 3600) // seconds
	v.SetDefault("poll_concurrency", 4)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		cfg.APIKey = footballapi.PlaceholderAPIKey
	}
	if cfg.APIKey == footballapi.PlaceholderAPIKey && !cfg.AllowPlaceholderKey {
		return nil, fmt.Errorf("football_api_key is not set (set allow_placeholder_api_key=true to start anyway)")
	}

	if cfg.APITimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid football_api_timeout_seconds (must be zero or positive seconds)")
	}
	cfg.APITimeout = time.Duration(cfg.APITimeoutSeconds) * time.Second

	if cfg.PollIntervalSeconds <= 0 {
		return nil, fmt.Errorf("invalid poll_interval (must be positive seconds)")
	}
	cfg.PollInterval = time.Duration(cfg.PollIntervalSeconds) * time.Second

	if cfg.PollConcurrency <= 0 {
		return nil, fmt.Errorf("invalid poll_concurrency (must be positive)")
	}

	return &cfg, nil
}

// ClientConfig maps the API settings onto the client's options. HTTP transport
// and logger are left for the caller to wire.
func (c *Config) ClientConfig() footballapi.ClientConfig {
	return footballapi.ClientConfig{
		BaseURL:      c.APIBaseURL,
		APIKey:       c.APIKey,
		APIKeyHeader: c.APIKeyHeader,
		Host:         c.APIHost,
	}
}
