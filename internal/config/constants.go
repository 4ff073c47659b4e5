package config

import "time"

const (
	// envConfigFile names an optional YAML config file.
	envConfigFile = "LIIGA_CONFIG"
	// envPrefix is the prefix for environment overrides, e.g. LIIGA_TOP_N.
	envPrefix = "LIIGA_"

	defaultPort     = "4000"
	defaultLogLevel = "info"
	defaultProvider = "liiga"
	defaultURL      = "https://liiga.fi/api/v1/players/stats"
	defaultTopN     = 5
	// Liiga stats update a few times per day; hourly polling is plenty.
	defaultPollInterval    = time.Hour
	defaultUpstreamTimeout = 10 * time.Second
	defaultMaxRetries      = 3
	defaultRetryBackoff    = 200 * time.Millisecond
	defaultMetricsPort     = "9090"
)

func defaultCategories() []string {
	return []string{"savepercentage", "shutouts", "goalsagainstavg"}
}
