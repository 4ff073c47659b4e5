package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"liiga-goalie-service/internal/coordinator"
	"liiga-goalie-service/internal/domain"
	"liiga-goalie-service/internal/sensor"
)

type stubSource struct {
	result *domain.RefreshResult
	last   time.Time
}

func (s *stubSource) Result() *domain.RefreshResult { return s.result }
func (s *stubSource) LastSuccess() time.Time        { return s.last }

func testViews() []*sensor.View {
	src := &stubSource{
		last: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
		result: domain.NewRefreshResult(map[string]domain.Leaderboard{
			"savepercentage": {
				{Rank: 1, Name: "Matti Virta", Team: "Kärpät", Value: 92.3, Wins: 18, Losses: 7, Ties: 3},
				{Rank: 2, Name: "Jani Koski", Team: "Tappara", Value: 91.0, Wins: 15, Losses: 9, Ties: 2},
			},
			"shutouts": {},
		}, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)),
	}
	return []*sensor.View{
		sensor.NewView("savepercentage", src),
		sensor.NewView("shutouts", src),
	}
}

func readyStatus() coordinator.Status {
	return coordinator.Status{LastSuccess: time.Now(), LastCycleOK: true}
}

func TestHealth(t *testing.T) {
	h := NewHandler(testViews(), nil, nil)
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthRejectsNonGet(t *testing.T) {
	h := NewHandler(testViews(), nil, nil)
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodPost, "/health", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestReadyReflectsCoordinatorStatus(t *testing.T) {
	h := NewHandler(testViews(), nil, readyStatus)
	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 when ready, got %d", rec.Code)
	}

	h = NewHandler(testViews(), nil, func() coordinator.Status {
		return coordinator.Status{LastError: "upstream down"}
	})
	rec = httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when not ready, got %d", rec.Code)
	}
}

func TestLeaderboardByCategory(t *testing.T) {
	h := NewHandler(testViews(), nil, readyStatus)
	rec := httptest.NewRecorder()
	h.LeaderboardByCategory(rec, httptest.NewRequest(http.MethodGet, "/leaderboards/savepercentage", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var state DisplayState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if state.State != "Matti Virta" {
		t.Fatalf("expected leader name, got %q", state.State)
	}
	if len(state.Attributes.Leaders) != 2 || state.Attributes.Leaders[0].Value != "92.3%" {
		t.Fatalf("unexpected attributes: %+v", state.Attributes)
	}
	if state.Attributes.Leaders[0].Record != "18-7-3" {
		t.Fatalf("unexpected record string: %q", state.Attributes.Leaders[0].Record)
	}
}

func TestLeaderboardByCategoryEmptyBoard(t *testing.T) {
	h := NewHandler(testViews(), nil, readyStatus)
	rec := httptest.NewRecorder()
	h.LeaderboardByCategory(rec, httptest.NewRequest(http.MethodGet, "/leaderboards/shutouts", nil))

	var state DisplayState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if state.State != sensor.StateNoData {
		t.Fatalf("expected %q, got %q", sensor.StateNoData, state.State)
	}
}

func TestLeaderboardByCategoryNotConfigured(t *testing.T) {
	h := NewHandler(testViews(), nil, readyStatus)
	rec := httptest.NewRecorder()
	h.LeaderboardByCategory(rec, httptest.NewRequest(http.MethodGet, "/leaderboards/wins", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestLeaderboardByCategoryInvalidPath(t *testing.T) {
	h := NewHandler(testViews(), nil, readyStatus)
	for _, path := range []string{"/leaderboards/", "/leaderboards/a/b"} {
		rec := httptest.NewRecorder()
		h.LeaderboardByCategory(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("path %q: expected 400, got %d", path, rec.Code)
		}
	}
}

func TestLeaderboardsListsAllCategories(t *testing.T) {
	h := NewHandler(testViews(), nil, readyStatus)
	rec := httptest.NewRecorder()
	h.Leaderboards(rec, httptest.NewRequest(http.MethodGet, "/leaderboards", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload struct {
		Categories  map[string]DisplayState `json:"categories"`
		LastUpdated string                  `json:"last_updated"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(payload.Categories))
	}
	if payload.LastUpdated == "" {
		t.Fatal("expected last_updated to be set")
	}
}
