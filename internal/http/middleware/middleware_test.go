package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoggingMiddlewarePreservesValidRequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123_XYZ")
	rec := httptest.NewRecorder()

	LoggingMiddleware(nil, nil, next).ServeHTTP(rec, req)

	if seen != "abc-123_XYZ" {
		t.Fatalf("expected request ID to pass through, got %q", seen)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "abc-123_XYZ" {
		t.Fatalf("expected response header to echo request ID, got %q", got)
	}
}

func TestLoggingMiddlewareReplacesInvalidRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	for _, bad := range []string{"", "has spaces", "ütf8", string(make([]byte, 80))} {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		if bad != "" {
			req.Header.Set("X-Request-ID", bad)
		}
		rec := httptest.NewRecorder()

		LoggingMiddleware(nil, nil, next).ServeHTTP(rec, req)

		got := rec.Header().Get("X-Request-ID")
		if got == "" {
			t.Fatalf("expected generated request ID for %q", bad)
		}
		if got == bad {
			t.Fatalf("expected %q to be replaced", bad)
		}
		if !requestIDPattern.MatchString(got) {
			t.Fatalf("generated ID %q does not match pattern", got)
		}
	}
}

func TestLoggingMiddlewareCapturesStatus(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/leaderboards/nope", nil)
	rec := httptest.NewRecorder()

	LoggingMiddleware(nil, nil, next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 to pass through, got %d", rec.Code)
	}
}

func TestRequestIDFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if got := RequestIDFromContext(req.Context()); got != "" {
		t.Fatalf("expected empty request ID, got %q", got)
	}
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/health":                    "/health",
		"/ready":                     "/ready",
		"/leaderboards":              "/leaderboards",
		"/leaderboards/shutouts":     "/leaderboards/:category",
		"/leaderboards/wins?foo=bar": "/leaderboards/:category",
		"/other":                     "/other",
	}
	for in, want := range cases {
		if got := normalizePath(in); got != want {
			t.Fatalf("normalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}
