package config

import (
	"fmt"
	"time"
)

// Config holds runtime configuration for the service. Fields are flat so the
// same keys work from YAML and from LIIGA_* environment variables.
type Config struct {
	Port      string `koanf:"port"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// Provider selects the upstream implementation: "liiga" or "fixture".
	Provider string `koanf:"provider"`

	// URL is the Liiga player statistics feed endpoint.
	URL string `koanf:"url"`

	// Categories lists the leaderboards to build each cycle.
	Categories []string `koanf:"categories"`

	// TopN caps each leaderboard's length.
	TopN int `koanf:"top_n"`

	// PollInterval is the refresh cadence.
	PollInterval time.Duration `koanf:"poll_interval"`

	// AdminToken, when set, enables the on-demand refresh endpoint.
	AdminToken string `koanf:"admin_token"`

	UpstreamTimeout time.Duration `koanf:"upstream_timeout"`
	MaxRetries      int           `koanf:"max_retries"`
	RetryBackoff    time.Duration `koanf:"retry_backoff"`

	MetricsEnabled  bool   `koanf:"metrics_enabled"`
	MetricsPort     string `koanf:"metrics_port"`
	OtelServiceName string `koanf:"otel_service_name"`
	OtlpEndpoint    string `koanf:"otlp_endpoint"`
	OtlpInsecure    bool   `koanf:"otlp_insecure"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Port:            defaultPort,
		LogLevel:        defaultLogLevel,
		Provider:        defaultProvider,
		URL:             defaultURL,
		Categories:      defaultCategories(),
		TopN:            defaultTopN,
		PollInterval:    defaultPollInterval,
		UpstreamTimeout: defaultUpstreamTimeout,
		MaxRetries:      defaultMaxRetries,
		RetryBackoff:    defaultRetryBackoff,
		MetricsPort:     defaultMetricsPort,
	}
}

// Validate rejects configurations the service cannot run with.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if c.URL == "" {
		return fmt.Errorf("url must not be empty")
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("categories must not be empty")
	}
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", c.PollInterval)
	}
	return nil
}
