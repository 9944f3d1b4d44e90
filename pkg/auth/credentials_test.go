package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// TestCheckAPIKey covers the match, mismatch, and empty cases.
func TestCheckAPIKey(t *testing.T) {
	if !CheckAPIKey("dev-secret", "dev-secret") {
		t.Error("expected matching keys to pass")
	}
	if CheckAPIKey("wrong", "dev-secret") {
		t.Error("expected mismatched keys to fail")
	}
	if CheckAPIKey("", "dev-secret") {
		t.Error("expected empty presented key to fail")
	}
	if CheckAPIKey("dev-secret", "") {
		t.Error("expected empty configured key to fail")
	}
	if CheckAPIKey("", "") {
		t.Error("expected empty pair to fail")
	}
}

// TestCheckPassword_Plaintext verifies the plaintext comparison path.
func TestCheckPassword_Plaintext(t *testing.T) {
	if !CheckPassword("admin1234", "admin1234") {
		t.Error("expected matching passwords to pass")
	}
	if CheckPassword("nope", "admin1234") {
		t.Error("expected mismatched passwords to fail")
	}
	if CheckPassword("", "admin1234") {
		t.Error("expected empty password to fail")
	}
}

// TestCheckPassword_Bcrypt verifies hashed configured values are compared
// with bcrypt rather than literally.
func TestCheckPassword_Bcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if !CheckPassword("admin1234", string(hash)) {
		t.Error("expected correct password to pass against hash")
	}
	if CheckPassword("nope", string(hash)) {
		t.Error("expected wrong password to fail against hash")
	}
	// The literal hash string is not a valid password.
	if CheckPassword(string(hash), string(hash)) {
		t.Error("expected the hash itself to fail as a password")
	}
}

// TestGenerateSessionToken verifies token shape and uniqueness.
func TestGenerateSessionToken(t *testing.T) {
	a, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) != 48 {
		t.Errorf("expected 48 characters, got %d", len(a))
	}
	b, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == b {
		t.Error("expected distinct tokens")
	}
}
