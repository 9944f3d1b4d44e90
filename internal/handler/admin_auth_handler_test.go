package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prefiction/backend/internal/model"
	"github.com/prefiction/backend/internal/repository"
	"github.com/prefiction/backend/internal/service"
	"github.com/prefiction/backend/pkg/auth"
)

func newAuthFixture(t *testing.T, production bool) (*AdminAuthHandler, *repository.MemorySessionStore, *service.SessionService) {
	t.Helper()
	store := repository.NewMemorySessionStore()
	sessions := service.NewSessionService(store, auth.SessionTTL)
	return NewAdminAuthHandler(sessions, "admin1234", production), store, sessions
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookieName() {
			return c
		}
	}
	return nil
}

// TestAdminAuthHandler_Verify verifies a correct password sets the session
// cookie and stores a session.
func TestAdminAuthHandler_Verify(t *testing.T) {
	h, store, _ := newAuthFixture(t, false)

	req := httptest.NewRequest(http.MethodPost, "/admin/verify", strings.NewReader(`{"password":"admin1234"}`))
	rec := httptest.NewRecorder()
	h.Verify(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	cookie := sessionCookie(t, rec)
	if cookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	if !cookie.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("expected SameSite=Lax, got %v", cookie.SameSite)
	}
	if cookie.Secure {
		t.Error("expected Secure unset outside production")
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 stored session, got %d", store.Len())
	}
	if _, err := store.Get(context.Background(), cookie.Value); err != nil {
		t.Errorf("expected cookie value to resolve to a session, got %v", err)
	}
}

// TestAdminAuthHandler_VerifySecureInProduction verifies the Secure flag is
// set when running in production.
func TestAdminAuthHandler_VerifySecureInProduction(t *testing.T) {
	h, _, _ := newAuthFixture(t, true)

	req := httptest.NewRequest(http.MethodPost, "/admin/verify", strings.NewReader(`{"password":"admin1234"}`))
	rec := httptest.NewRecorder()
	h.Verify(rec, req)

	cookie := sessionCookie(t, rec)
	if cookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	if !cookie.Secure {
		t.Error("expected Secure cookie in production")
	}
}

// TestAdminAuthHandler_VerifyWrongPassword verifies a bad password answers
// 401 without setting a cookie or storing anything.
func TestAdminAuthHandler_VerifyWrongPassword(t *testing.T) {
	h, store, _ := newAuthFixture(t, false)

	req := httptest.NewRequest(http.MethodPost, "/admin/verify", strings.NewReader(`{"password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Verify(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
	if sessionCookie(t, rec) != nil {
		t.Error("expected no cookie on failed login")
	}
	if store.Len() != 0 {
		t.Errorf("expected no stored sessions, got %d", store.Len())
	}
}

// TestAdminAuthHandler_VerifyInvalidJSON verifies malformed bodies answer
// 400.
func TestAdminAuthHandler_VerifyInvalidJSON(t *testing.T) {
	h, _, _ := newAuthFixture(t, false)

	req := httptest.NewRequest(http.MethodPost, "/admin/verify", strings.NewReader("{oops"))
	rec := httptest.NewRecorder()
	h.Verify(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

// TestAdminAuthHandler_Logout verifies the session is destroyed and the
// cookie cleared.
func TestAdminAuthHandler_Logout(t *testing.T) {
	h, store, sessions := newAuthFixture(t, false)

	session, err := sessions.Create(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName(), Value: session.ID})
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if store.Len() != 0 {
		t.Errorf("expected session destroyed, store has %d", store.Len())
	}
	cookie := sessionCookie(t, rec)
	if cookie == nil {
		t.Fatal("expected clearing cookie")
	}
	if cookie.MaxAge >= 0 && cookie.Value != "" {
		t.Errorf("expected expired empty cookie, got MaxAge=%d Value=%q", cookie.MaxAge, cookie.Value)
	}
}

// TestAdminAuthHandler_LogoutWithoutSession verifies logout is idempotent:
// no cookie, or a cookie for a session that no longer exists, still answers
// 200.
func TestAdminAuthHandler_LogoutWithoutSession(t *testing.T) {
	h, _, _ := newAuthFixture(t, false)

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200 without a cookie, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName(), Value: "long-gone"})
	rec = httptest.NewRecorder()
	h.Logout(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200 for a stale cookie, got %d", rec.Code)
	}
}

// TestAdminAuthHandler_SessionAuthorizesListing verifies the cookie issued
// by Verify passes the admin middleware on a subsequent request.
func TestAdminAuthHandler_SessionAuthorizesListing(t *testing.T) {
	h, _, sessions := newAuthFixture(t, false)

	req := httptest.NewRequest(http.MethodPost, "/admin/verify", strings.NewReader(`{"password":"admin1234"}`))
	rec := httptest.NewRecorder()
	h.Verify(rec, req)
	cookie := sessionCookie(t, rec)
	if cookie == nil {
		t.Fatal("expected session cookie to be set")
	}

	listHandler := NewSubmissionHandler(&mockSubmissionService{
		listFunc: func(ctx context.Context) ([]*model.Submission, error) {
			return nil, nil
		},
	})
	protected := auth.RequireAdmin("dev-secret", sessions)(http.HandlerFunc(listHandler.AdminList))

	listReq := httptest.NewRequest(http.MethodGet, "/admin/submissions", nil)
	listReq.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	listRec := httptest.NewRecorder()
	protected.ServeHTTP(listRec, listReq)

	if listRec.Code != http.StatusOK {
		t.Errorf("expected status 200 with session cookie, got %d", listRec.Code)
	}
}
