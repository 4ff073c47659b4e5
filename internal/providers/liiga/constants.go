package liiga

import "time"

const (
	defaultBaseURL     = "https://liiga.fi/api/v1/players/stats"
	defaultHTTPTimeout = 10 * time.Second
)

const providerName = "liiga"
