package http

import (
	nethttp "net/http"

	"liiga-goalie-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/leaderboards", handler.Leaderboards)
	mux.HandleFunc("/leaderboards/", handler.LeaderboardByCategory)
	return mux
}
