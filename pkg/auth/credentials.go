package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CheckAPIKey compares a presented API key against the configured secret in
// constant time. Both values are hashed first so the comparison length does
// not depend on either input.
func CheckAPIKey(presented, expected string) bool {
	if presented == "" || expected == "" {
		return false
	}
	a := sha256.Sum256([]byte(presented))
	b := sha256.Sum256([]byte(expected))
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

// CheckPassword verifies the admin panel password. When the configured
// value is a bcrypt hash the password is checked against it; otherwise the
// two are compared in constant time.
func CheckPassword(presented, expected string) bool {
	if presented == "" || expected == "" {
		return false
	}
	if isBcryptHash(expected) {
		return bcrypt.CompareHashAndPassword([]byte(expected), []byte(presented)) == nil
	}
	a := sha256.Sum256([]byte(presented))
	b := sha256.Sum256([]byte(expected))
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}
