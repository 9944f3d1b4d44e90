package model

import "time"

// Submission represents one contact-form entry. Records are immutable after
// creation and removed only through the admin delete endpoint.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
