package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// SessionTTL is how long an admin session lives without activity. Every
// authenticated use pushes the expiry forward by the full TTL.
const SessionTTL = time.Hour

const tokenBytes = 24

// GenerateSessionToken returns a cryptographically random session
// identifier (48 hex chars).
func GenerateSessionToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
