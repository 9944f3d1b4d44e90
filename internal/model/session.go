package model

import "time"

// Session is one authenticated admin browser session, referenced by the
// opaque cookie value in ID. Expiry slides forward on every authenticated
// use.
type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
