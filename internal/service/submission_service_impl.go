package service

import (
	"context"
	"strings"
	"time"

	"github.com/prefiction/backend/internal/model"
	"github.com/prefiction/backend/internal/repository"
)

// submissionServiceImpl is the production implementation of
// SubmissionService.
type submissionServiceImpl struct {
	repo repository.SubmissionRepository
}

// NewSubmissionService creates a SubmissionService backed by the given
// repository.
func NewSubmissionService(repo repository.SubmissionRepository) SubmissionService {
	return &submissionServiceImpl{repo: repo}
}

// Submit trims all fields, stamps CreatedAt, and persists the submission.
// Field presence validation happens at the handler; by the time a
// submission reaches here it is assumed well-formed.
func (s *submissionServiceImpl) Submit(ctx context.Context, sub *model.Submission) error {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Company = strings.TrimSpace(sub.Company)
	sub.Message = strings.TrimSpace(sub.Message)
	sub.CreatedAt = time.Now().UTC()
	return s.repo.Save(ctx, sub)
}

// List returns all submissions, newest first.
func (s *submissionServiceImpl) List(ctx context.Context) ([]*model.Submission, error) {
	return s.repo.List(ctx)
}

// Delete removes a submission by ID.
func (s *submissionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
