package repository

import (
	"context"

	"github.com/prefiction/backend/internal/model"
)

// SubmissionRepository defines the persistence interface for contact-form
// submissions. Implementations populate sub.ID on Save.
type SubmissionRepository interface {
	Save(ctx context.Context, sub *model.Submission) error

	// List returns all submissions ordered by creation time, newest first.
	List(ctx context.Context) ([]*model.Submission, error)

	// Delete removes the submission with the given ID. Returns ErrNotFound
	// when no such record exists.
	Delete(ctx context.Context, id string) error

	// Ping verifies the storage backend is reachable.
	Ping(ctx context.Context) error
}
