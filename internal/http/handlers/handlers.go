package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strings"

	"liiga-goalie-service/internal/coordinator"
	"liiga-goalie-service/internal/logging"
	"liiga-goalie-service/internal/sensor"
)

// DisplayState is the rendered projection of one category returned to the
// host's rendering layer.
type DisplayState struct {
	State      string            `json:"state"`
	Attributes sensor.Attributes `json:"attributes"`
}

// Handler wires HTTP routes to the sensor views.
type Handler struct {
	views    map[string]*sensor.View
	order    []string
	logger   *slog.Logger
	statusFn func() coordinator.Status
}

// NewHandler constructs a Handler over the given views. The iteration order
// of the leaderboards listing follows the configured category order.
func NewHandler(views []*sensor.View, logger *slog.Logger, statusFn func() coordinator.Status) *Handler {
	byCategory := make(map[string]*sensor.View, len(views))
	order := make([]string, 0, len(views))
	for _, v := range views {
		if _, seen := byCategory[v.Category()]; seen {
			continue
		}
		byCategory[v.Category()] = v
		order = append(order, v.Category())
	}
	return &Handler{
		views:    byCategory,
		order:    order,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports liveness.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: the coordinator must have succeeded at
// least once and not be failing repeatedly.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Leaderboards returns the display state for every configured category.
func (h *Handler) Leaderboards(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	categories := make(map[string]DisplayState, len(h.order))
	var lastUpdated string
	for _, category := range h.order {
		view := h.views[category]
		state := DisplayState{State: view.State(), Attributes: view.Attributes()}
		categories[category] = state
		if state.Attributes.LastUpdated != "" {
			lastUpdated = state.Attributes.LastUpdated
		}
	}

	logging.Info(logger, "served leaderboards", logging.FieldCount, len(categories))
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"categories":   categories,
		"last_updated": lastUpdated,
	}, h.logger)
}

// LeaderboardByCategory returns one category's display state.
func (h *Handler) LeaderboardByCategory(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	category := strings.Trim(strings.TrimPrefix(r.URL.Path, "/leaderboards"), "/")
	if category == "" || strings.Contains(category, "/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid category", h.logger)
		return
	}

	view, ok := h.views[category]
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "category not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served leaderboard", slog.String(logging.FieldCategory, category))
	writeJSON(w, nethttp.StatusOK, DisplayState{
		State:      view.State(),
		Attributes: view.Attributes(),
	}, h.logger)
}

func requireMethod(w nethttp.ResponseWriter, r *nethttp.Request, method string, logger *slog.Logger) bool {
	if r.Method != method {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", logger)
		return false
	}
	return true
}

func loggerFromContext(r *nethttp.Request, fallback *slog.Logger) *slog.Logger {
	return logging.FromContext(r.Context(), fallback)
}
