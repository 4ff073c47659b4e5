package liiga

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"liiga-goalie-service/internal/domain"
	"liiga-goalie-service/internal/providers"
)

// Config controls how the client reaches the Liiga stats feed.
type Config struct {
	URL        string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches player statistics from the Liiga feed and extracts
// goaltender records. The feed has shipped several incompatible payload
// shapes over time, so the body is decoded dynamically and probed for the
// player list rather than bound to a fixed schema.
type Client struct {
	url        string
	httpClient httpDoer
	logger     *slog.Logger
}

// NewClient constructs a Liiga client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		url:        normalizeURL(cfg.URL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
	}
}

// FetchGoalies retrieves the current goaltender records. A payload with no
// recognizable player data is a warning, not an error: it returns an empty
// slice so the caller can publish an empty (but valid) result.
func (c *Client) FetchGoalies(ctx context.Context) ([]domain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	goalies, recognized := extractGoalies(payload)
	if !recognized && c.logger != nil {
		c.logger.Warn("no goalie data found in response or unrecognized format",
			slog.String("provider", providerName))
	}
	return goalies, nil
}
