package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

type stubRefresher struct {
	started bool
	calls   atomic.Int32
}

func (s *stubRefresher) Refresh(ctx context.Context) bool {
	s.calls.Add(1)
	return s.started
}

func adminRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/refresh", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminRefreshTriggersCycle(t *testing.T) {
	refresher := &stubRefresher{started: true}
	h := NewAdminHandler(refresher, "secret", nil)

	rec := httptest.NewRecorder()
	h.Refresh(rec, adminRequest("secret"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := refresher.calls.Load(); got != 1 {
		t.Fatalf("expected 1 refresh call, got %d", got)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "refreshed" {
		t.Fatalf("unexpected status %q", body["status"])
	}
}

func TestAdminRefreshAlreadyRunning(t *testing.T) {
	refresher := &stubRefresher{started: false}
	h := NewAdminHandler(refresher, "secret", nil)

	rec := httptest.NewRecorder()
	h.Refresh(rec, adminRequest("secret"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "already running" {
		t.Fatalf("unexpected status %q", body["status"])
	}
}

func TestAdminRefreshRejectsBadToken(t *testing.T) {
	refresher := &stubRefresher{started: true}
	h := NewAdminHandler(refresher, "secret", nil)

	rec := httptest.NewRecorder()
	h.Refresh(rec, adminRequest("wrong"))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := refresher.calls.Load(); got != 0 {
		t.Fatalf("expected no refresh call, got %d", got)
	}
}

func TestAdminRefreshDisabledWithoutToken(t *testing.T) {
	h := NewAdminHandler(&stubRefresher{started: true}, "", nil)

	rec := httptest.NewRecorder()
	h.Refresh(rec, adminRequest("anything"))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when no token configured, got %d", rec.Code)
	}
}

func TestAdminRefreshRejectsNonPost(t *testing.T) {
	h := NewAdminHandler(&stubRefresher{started: true}, "secret", nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/refresh", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
