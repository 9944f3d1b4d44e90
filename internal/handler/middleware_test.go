package handler

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// TestRequestID_Generated verifies an ID is assigned, echoed, and reachable
// from the request context.
func TestRequestID_Generated(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	echoed := rec.Header().Get("X-Request-ID")
	if echoed == "" {
		t.Fatal("expected X-Request-ID on the response")
	}
	if !uuidPattern.MatchString(echoed) {
		t.Errorf("expected a UUID, got %q", echoed)
	}
	if seen != echoed {
		t.Errorf("expected context ID %q to match echoed ID %q", seen, echoed)
	}
}

// TestRequestID_Honored verifies a client-supplied ID is kept.
func TestRequestID_Honored(t *testing.T) {
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-id-7")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "client-id-7" {
		t.Errorf("expected client-id-7, got %q", got)
	}
}

// TestRequestIDFromContext_Missing verifies the zero value outside the
// middleware.
func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := RequestIDFromContext(req.Context()); got != "" {
		t.Errorf("expected empty ID, got %q", got)
	}
}

// TestSecurityHeaders verifies the hardening headers are present.
func TestSecurityHeaders(t *testing.T) {
	h := SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("expected nosniff, got %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "SAMEORIGIN" {
		t.Errorf("expected SAMEORIGIN, got %q", got)
	}
	csp := rec.Header().Get("Content-Security-Policy")
	if !strings.Contains(csp, "default-src 'self'") {
		t.Errorf("unexpected CSP %q", csp)
	}
	if !strings.Contains(csp, "https://cdn.tailwindcss.com") {
		t.Errorf("expected Tailwind CDN in CSP, got %q", csp)
	}
}

// TestRequestLogger_PassThrough verifies the logger does not alter the
// wrapped handler's response.
func TestRequestLogger_PassThrough(t *testing.T) {
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("expected status 418, got %d", rec.Code)
	}
	if rec.Body.String() != "short and stout" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}
