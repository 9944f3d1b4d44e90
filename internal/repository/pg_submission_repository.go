package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prefiction/backend/internal/model"
)

// SubmissionSchemaPostgres creates the submissions table for the Postgres
// backend. Applied by cmd/migrate.
const SubmissionSchemaPostgres = `
CREATE TABLE IF NOT EXISTS submissions (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	company TEXT NOT NULL DEFAULT '',
	message TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions (created_at DESC);
`

// PgSubmissionRepository is the PostgreSQL implementation of
// SubmissionRepository.
type PgSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by the
// given pool.
func NewPgSubmissionRepository(pool *pgxpool.Pool) *PgSubmissionRepository {
	return &PgSubmissionRepository{pool: pool}
}

var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

// Save inserts a new submissions row. The ID is generated here so both
// storage backends hand out identifiers of the same shape.
func (r *PgSubmissionRepository) Save(ctx context.Context, sub *model.Submission) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO submissions (id, name, email, company, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		sub.ID, sub.Name, sub.Email, sub.Company, sub.Message, sub.CreatedAt)
	return err
}

// List returns all submissions, newest first.
func (r *PgSubmissionRepository) List(ctx context.Context) ([]*model.Submission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, company, message, created_at
		 FROM submissions
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.Submission
	for rows.Next() {
		var s model.Submission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Company, &s.Message, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// Delete removes a submission by ID, reporting ErrNotFound when absent.
func (r *PgSubmissionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM submissions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping verifies database connectivity.
func (r *PgSubmissionRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
