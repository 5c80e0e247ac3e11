package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
)

// NoteRepository provides persistence operations for project notes.
type NoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

const noteCols = `id, project_id, note, action_item, category, authored_by, created_at, updated_at`

func scanNote(row interface{ Scan(...any) error }) (*domain.ProjectNote, error) {
	var n domain.ProjectNote
	err := row.Scan(&n.ID, &n.ProjectID, &n.Note, &n.ActionItem, &n.Category,
		&n.AuthoredBy, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NoteRepository) Insert(ctx context.Context, n *domain.ProjectNote) (*domain.ProjectNote, error) {
	const q = `
INSERT INTO project_notes (project_id, note, action_item, category, authored_by)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + noteCols + `;
`
	created, err := scanNote(r.db.QueryRowContext(ctx, q,
		n.ProjectID, n.Note, n.ActionItem, n.Category, n.AuthoredBy))
	if err != nil {
		return nil, translateWriteErr("note insert", err)
	}
	return created, nil
}

func (r *NoteRepository) Get(ctx context.Context, id int64) (*domain.ProjectNote, error) {
	const q = `SELECT ` + noteCols + ` FROM project_notes WHERE id = $1;`
	n, err := scanNote(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("note %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return n, nil
}

// ListByProject returns a project's notes, most recent first.
func (r *NoteRepository) ListByProject(ctx context.Context, projectID int64, skip, limit int) ([]domain.ProjectNote, error) {
	if limit <= 0 {
		limit = 100
	}
	const q = `
SELECT ` + noteCols + `
FROM project_notes
WHERE project_id = $1
ORDER BY updated_at DESC
LIMIT $2 OFFSET $3;
`
	rows, err := r.db.QueryContext(ctx, q, projectID, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ProjectNote, 0, 16)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

func (r *NoteRepository) Update(ctx context.Context, n *domain.ProjectNote) (*domain.ProjectNote, error) {
	const q = `
UPDATE project_notes
SET note = $2, action_item = $3, category = $4, updated_at = now()
WHERE id = $1
RETURNING ` + noteCols + `;
`
	updated, err := scanNote(r.db.QueryRowContext(ctx, q, n.ID, n.Note, n.ActionItem, n.Category))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("note %d: %w", n.ID, domain.ErrNotFound)
		}
		return nil, translateWriteErr("note update", err)
	}
	return updated, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM project_notes WHERE id = $1;`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, translateDeleteErr("note delete", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
