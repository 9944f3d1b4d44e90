package service

import (
	"context"

	"github.com/prefiction/backend/internal/model"
)

// SubmissionService defines the business logic for contact-form
// submissions.
type SubmissionService interface {
	// Submit stores a new submission. Fields are trimmed and sub.ID and
	// sub.CreatedAt are populated by the implementation.
	Submit(ctx context.Context, sub *model.Submission) error

	// List returns all submissions, newest first.
	List(ctx context.Context) ([]*model.Submission, error)

	// Delete removes a submission by ID. Returns repository.ErrNotFound
	// when no such record exists.
	Delete(ctx context.Context, id string) error
}
