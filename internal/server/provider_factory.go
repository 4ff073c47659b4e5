package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"liiga-goalie-service/internal/config"
	"liiga-goalie-service/internal/metrics"
	"liiga-goalie-service/internal/providers"
	"liiga-goalie-service/internal/providers/fixture"
	"liiga-goalie-service/internal/providers/liiga"
)

// providerFactory assembles the goalie provider with the shared retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.GoalieProvider {
	base := selectProvider(cfg, f.logger)
	return providers.NewRetryingProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), cfg.MaxRetries, cfg.RetryBackoff)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.GoalieProvider {
	switch cfg.Provider {
	case "liiga", "":
		return liiga.NewClient(liiga.Config{
			URL:        cfg.URL,
			HTTPClient: &http.Client{Timeout: cfg.UpstreamTimeout},
			Logger:     logger,
		})
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

// normalizeProviderName returns a lower-cased provider name, deriving from
// the instance when not explicitly configured. Keeps naming consistent in
// metrics and logs.
func normalizeProviderName(raw string, provider providers.GoalieProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
