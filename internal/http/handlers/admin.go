package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"liiga-goalie-service/internal/logging"
)

// Refresher triggers an on-demand refresh cycle. It reports false when a
// cycle was already in flight and the trigger collapsed to a no-op.
type Refresher interface {
	Refresh(ctx context.Context) bool
}

// AdminHandler exposes admin-only endpoints (e.g., on-demand refresh).
type AdminHandler struct {
	refresher Refresher
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(refresher Refresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		token:     token,
		logger:    logger,
	}
}

// Refresh triggers a refresh cycle outside the regular schedule. Guarded by
// the configured admin token; returns 401 if missing/invalid.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized", slog.String("path", r.URL.Path))
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresher not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	if !h.refresher.Refresh(r.Context()) {
		logging.Info(logger, "admin refresh skipped, cycle already running")
		writeJSON(w, http.StatusOK, map[string]string{"status": "already running"}, logger)
		return
	}

	logging.Info(logger, "admin refresh completed")
	writeJSON(w, http.StatusOK, map[string]string{"status": "refreshed"}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
