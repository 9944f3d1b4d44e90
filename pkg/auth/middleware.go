package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const credentialKey contextKey = "admin_credential"

// Credential names how the request authenticated.
type Credential string

const (
	// CredentialAPIKey marks requests authenticated via the X-API-Key header.
	CredentialAPIKey Credential = "api_key"
	// CredentialSession marks requests authenticated via the session cookie.
	CredentialSession Credential = "session"
)

// CredentialFromContext returns how the request authenticated, if it did.
func CredentialFromContext(ctx context.Context) (Credential, bool) {
	v, ok := ctx.Value(credentialKey).(Credential)
	return v, ok
}

// WithCredential stores the authentication method in the context.
func WithCredential(ctx context.Context, c Credential) context.Context {
	return context.WithValue(ctx, credentialKey, c)
}

// SessionValidator validates a session token, refreshing its expiry on
// success. Implemented by service.SessionService.
type SessionValidator interface {
	Validate(ctx context.Context, id string) error
}

// RequireAdmin guards admin endpoints. A request passes with either a
// matching X-API-Key header or a live session cookie. All failures produce
// the same 401 body so callers cannot distinguish a missing credential
// from a bad one.
func RequireAdmin(apiKey string, sessions SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key := r.Header.Get("X-API-Key"); key != "" && CheckAPIKey(key, apiKey) {
				ctx := WithCredential(r.Context(), CredentialAPIKey)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			cookie, err := r.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				unauthorized(w)
				return
			}
			if err := sessions.Validate(r.Context(), cookie.Value); err != nil {
				unauthorized(w)
				return
			}

			ctx := WithCredential(r.Context(), CredentialSession)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
