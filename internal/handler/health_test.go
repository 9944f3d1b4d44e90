package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type mockPinger struct {
	pingFunc func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.pingFunc(ctx)
}

// TestHealthHandler_OK verifies a reachable backend answers 200.
func TestHealthHandler_OK(t *testing.T) {
	h := NewHealthHandler(&mockPinger{
		pingFunc: func(ctx context.Context) error { return nil },
	})

	req := httptest.NewRequest(http.MethodGet, "/_health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

// TestHealthHandler_Unavailable verifies an unreachable backend answers 503.
func TestHealthHandler_Unavailable(t *testing.T) {
	h := NewHealthHandler(&mockPinger{
		pingFunc: func(ctx context.Context) error { return errors.New("db down") },
	})

	req := httptest.NewRequest(http.MethodGet, "/_health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok":false`) {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}
