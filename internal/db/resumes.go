package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
)

const resumeColumns = `id, user_id, title, document, created_at, updated_at`

func scanResume(row pgx.Row) (*types.Resume, error) {
	var (
		r     types.Resume
		title string
		doc   []byte
	)
	if err := row.Scan(&r.ID, &r.UserID, &title, &doc, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	d, err := decodeDocument(doc, title)
	if err != nil {
		return nil, err
	}
	r.Draft = d
	return &r, nil
}

// CreateResume stores a new resume for userID and returns it
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, d types.Draft) (*types.Resume, error) {
	doc, err := encodeDocument(d)
	if err != nil {
		return nil, err
	}
	r, err := scanResume(db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, title, document)
		 VALUES ($1, $2, $3)
		 RETURNING `+resumeColumns,
		userID, d.Title, doc,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return r, nil
}

// ListResumesByUser returns a user's resumes, most recently updated first
func (db *DB) ListResumesByUser(ctx context.Context, userID uuid.UUID) ([]types.Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+resumeColumns+`
		 FROM resumes WHERE user_id = $1
		 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	resumes := []types.Resume{}
	for rows.Next() {
		r, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resumes: %w", err)
	}
	return resumes, nil
}

// GetResumeForUser retrieves a resume owned by userID. Returns nil, nil when
// the resume does not exist or belongs to someone else.
func (db *DB) GetResumeForUser(ctx context.Context, id, userID uuid.UUID) (*types.Resume, error) {
	r, err := scanResume(db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return r, nil
}

// UpdateResume overwrites the title and document of an owned resume and
// returns the stored result. Returns nil, nil when no owned resume matched.
func (db *DB) UpdateResume(ctx context.Context, id, userID uuid.UUID, d types.Draft) (*types.Resume, error) {
	doc, err := encodeDocument(d)
	if err != nil {
		return nil, err
	}
	r, err := scanResume(db.pool.QueryRow(ctx,
		`UPDATE resumes SET title = $1, document = $2, updated_at = NOW()
		 WHERE id = $3 AND user_id = $4
		 RETURNING `+resumeColumns,
		d.Title, doc, id, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return r, nil
}

// DeleteResume removes an owned resume. It reports whether a row was deleted.
func (db *DB) DeleteResume(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
