package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/siteforge/siteforge/internal/database"
)

// SubmissionRepo handles the submission log.
type SubmissionRepo struct {
	db *sql.DB
}

func NewSubmissionRepo(db *sql.DB) *SubmissionRepo { return &SubmissionRepo{db: db} }

func (r *SubmissionRepo) Insert(ctx context.Context, s Submission) error {
	payload := s.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = database.Now()
	}
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO submissions(id, intent, payload, page_category, created_at)
		VALUES(?, ?, ?, ?, ?);
		`, s.ID, s.Intent, string(raw), s.PageCategory, s.CreatedAt)
		return err
	})
}

// List returns the most recent submissions, newest first.
func (r *SubmissionRepo) List(ctx context.Context, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, intent, payload, page_category, created_at
	FROM submissions ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var s Submission
		var raw string
		if err := rows.Scan(&s.ID, &s.Intent, &raw, &s.PageCategory, &s.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(raw), &s.Payload); err != nil {
			return nil, fmt.Errorf("unmarshal payload for %s: %w", s.ID, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Count returns the total number of recorded submissions.
func (r *SubmissionRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&n)
	return n, err
}

// CountByIntent returns submission counts keyed by intent name.
func (r *SubmissionRepo) CountByIntent(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT intent, COUNT(*) FROM submissions GROUP BY intent`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var in string
		var n int
		if err := rows.Scan(&in, &n); err != nil {
			return nil, err
		}
		out[in] = n
	}
	return out, rows.Err()
}
