package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/prefiction/backend/internal/model"
)

// SubmissionSchemaSQLite creates the submissions table for the SQLite
// backend. Applied by cmd/migrate and by tests.
const SubmissionSchemaSQLite = `
CREATE TABLE IF NOT EXISTS submissions (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	company TEXT NOT NULL DEFAULT '',
	message TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions (created_at DESC);
`

// SQLiteSubmissionRepository is the SQLite implementation of
// SubmissionRepository, used when no Postgres DSN is configured.
type SQLiteSubmissionRepository struct {
	db *sql.DB
}

// NewSQLiteSubmissionRepository creates a SQLiteSubmissionRepository backed
// by the given handle.
func NewSQLiteSubmissionRepository(db *sql.DB) *SQLiteSubmissionRepository {
	return &SQLiteSubmissionRepository{db: db}
}

var _ SubmissionRepository = (*SQLiteSubmissionRepository)(nil)

// Timestamps are stored as Unix milliseconds; SQLite has no native time type.

// Save inserts a new submissions row, generating the ID when unset.
func (r *SQLiteSubmissionRepository) Save(ctx context.Context, sub *model.Submission) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO submissions (id, name, email, company, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Name, sub.Email, sub.Company, sub.Message, sub.CreatedAt.UTC().UnixMilli())
	return err
}

// List returns all submissions, newest first.
func (r *SQLiteSubmissionRepository) List(ctx context.Context) ([]*model.Submission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, company, message, created_at
		 FROM submissions
		 ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.Submission
	for rows.Next() {
		var s model.Submission
		var createdMillis int64
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Company, &s.Message, &createdMillis); err != nil {
			return nil, err
		}
		s.CreatedAt = time.UnixMilli(createdMillis).UTC()
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// Delete removes a submission by ID, reporting ErrNotFound when absent.
func (r *SQLiteSubmissionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM submissions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping verifies database connectivity.
func (r *SQLiteSubmissionRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
