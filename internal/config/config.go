package config

import "github.com/jonesrussell/mcp-aws-news/internal/logger"

// Default values applied when neither the config file nor the
// environment provides a setting.
const (
	defaultFeedURL         = "https://api.aws-news.com/articles"
	defaultCacheTTLSeconds = 300
	defaultHTTPTimeoutSecs = 30
)

// Config holds the MCP server configuration.
type Config struct {
	Feed    FeedConfig    `yaml:"feed"`
	Client  ClientConfig  `yaml:"client"`
	Logging logger.Config `yaml:"logging"`
}

// FeedConfig holds settings for the upstream article feed.
type FeedConfig struct {
	URL             string `yaml:"url" env:"AWS_NEWS_FEED_URL"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds" env:"CACHE_TTL_SECONDS"`
}

// ClientConfig holds settings for the shared HTTP client.
type ClientConfig struct {
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds" env:"HTTP_TIMEOUT_SECONDS"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	cfg, err := load[Config](path)
	if err != nil {
		return nil, err
	}
	setDefaults(cfg)
	// Re-apply env overrides after defaults (env always wins)
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadOrDefault loads config from file, or returns defaults if the file
// doesn't exist. The config file is optional for MCP servers.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		cfg = NewDefault()
		applyEnvOverrides(cfg)
	}
	return cfg
}

// NewDefault creates a new config with all default values.
func NewDefault() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func setDefaults(cfg *Config) {
	if cfg.Feed.URL == "" {
		cfg.Feed.URL = defaultFeedURL
	}
	if cfg.Feed.CacheTTLSeconds == 0 {
		cfg.Feed.CacheTTLSeconds = defaultCacheTTLSeconds
	}
	if cfg.Client.HTTPTimeoutSeconds == 0 {
		cfg.Client.HTTPTimeoutSeconds = defaultHTTPTimeoutSecs
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}
