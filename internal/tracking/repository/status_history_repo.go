package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
)

// StatusHistoryRepository stores the append-only status trail of a project.
// Entries are never updated or deleted.
type StatusHistoryRepository struct {
	db *sql.DB
}

func NewStatusHistoryRepository(db *sql.DB) *StatusHistoryRepository {
	return &StatusHistoryRepository{db: db}
}

const statusEntryCols = `id, project_id, status, status_date, updated_by, comments`

func scanStatusEntry(row interface{ Scan(...any) error }) (*domain.ProjectStatusEntry, error) {
	var e domain.ProjectStatusEntry
	err := row.Scan(&e.ID, &e.ProjectID, &e.Status, &e.StatusDate, &e.UpdatedBy, &e.Comments)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *StatusHistoryRepository) Insert(ctx context.Context, e *domain.ProjectStatusEntry) (*domain.ProjectStatusEntry, error) {
	const q = `
INSERT INTO project_status_history (project_id, status, updated_by, comments)
VALUES ($1, $2, $3, $4)
RETURNING ` + statusEntryCols + `;
`
	created, err := scanStatusEntry(r.db.QueryRowContext(ctx, q,
		e.ProjectID, e.Status, e.UpdatedBy, e.Comments))
	if err != nil {
		return nil, translateWriteErr("status entry insert", err)
	}
	return created, nil
}

// ListByProject returns a project's status trail, newest first.
func (r *StatusHistoryRepository) ListByProject(ctx context.Context, projectID int64, skip, limit int) ([]domain.ProjectStatusEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	const q = `
SELECT ` + statusEntryCols + `
FROM project_status_history
WHERE project_id = $1
ORDER BY status_date DESC
LIMIT $2 OFFSET $3;
`
	rows, err := r.db.QueryContext(ctx, q, projectID, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ProjectStatusEntry, 0, 16)
	for rows.Next() {
		e, err := scanStatusEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// Latest returns the most recent status entry for a project.
func (r *StatusHistoryRepository) Latest(ctx context.Context, projectID int64) (*domain.ProjectStatusEntry, error) {
	const q = `
SELECT ` + statusEntryCols + `
FROM project_status_history
WHERE project_id = $1
ORDER BY status_date DESC
LIMIT 1;
`
	e, err := scanStatusEntry(r.db.QueryRowContext(ctx, q, projectID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("status history for project %d: %w", projectID, domain.ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}
