package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
)

// ProjectRepository provides persistence operations for projects.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectCols = `id, code, type, description, analyst, manager, status, last_edited_by, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Code, &p.Type, &p.Description, &p.Analyst, &p.Manager,
		&p.Status, &p.LastEditedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Insert persists a new project and returns it with store-assigned fields.
func (r *ProjectRepository) Insert(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	const q = `
INSERT INTO projects (code, type, description, analyst, manager, status, last_edited_by)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + projectCols + `;
`
	created, err := scanProject(r.db.QueryRowContext(ctx, q,
		p.Code, p.Type, p.Description, p.Analyst, p.Manager, p.Status, p.LastEditedBy))
	if err != nil {
		return nil, translateWriteErr("project insert", err)
	}
	return created, nil
}

// Get fetches a project by identifier.
func (r *ProjectRepository) Get(ctx context.Context, id int64) (*domain.Project, error) {
	const q = `SELECT ` + projectCols + ` FROM projects WHERE id = $1;`
	p, err := scanProject(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

// GetByCode fetches a project by its human project code.
func (r *ProjectRepository) GetByCode(ctx context.Context, code string) (*domain.Project, error) {
	const q = `SELECT ` + projectCols + ` FROM projects WHERE code = $1;`
	p, err := scanProject(r.db.QueryRowContext(ctx, q, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project %s: %w", code, domain.ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

// Exists reports whether a project with the given identifier is present.
func (r *ProjectRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1);`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// ProjectFilter holds the optional list predicates. Absent predicates mean
// no constraint.
type ProjectFilter struct {
	Status  *domain.ProjectStatus
	Analyst *string
	Search  string
	Skip    int
	Limit   int
}

// List returns projects matching the filter, most recently edited first.
func (r *ProjectRepository) List(ctx context.Context, f ProjectFilter) ([]domain.Project, error) {
	q := `SELECT ` + projectCols + ` FROM projects WHERE 1=1`
	args := make([]any, 0, 4)

	if f.Status != nil {
		args = append(args, *f.Status)
		q += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Analyst != nil {
		args = append(args, *f.Analyst)
		q += fmt.Sprintf(" AND analyst = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		q += fmt.Sprintf(" AND (code ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	q += fmt.Sprintf(" ORDER BY updated_at DESC LIMIT $%d", len(args))
	args = append(args, f.Skip)
	q += fmt.Sprintf(" OFFSET $%d;", len(args))

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Update persists the full updatable field set of a merged project.
func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	const q = `
UPDATE projects
SET type = $2, description = $3, analyst = $4, manager = $5, status = $6,
    last_edited_by = $7, updated_at = now()
WHERE id = $1
RETURNING ` + projectCols + `;
`
	updated, err := scanProject(r.db.QueryRowContext(ctx, q,
		p.ID, p.Type, p.Description, p.Analyst, p.Manager, p.Status, p.LastEditedBy))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project %d: %w", p.ID, domain.ErrNotFound)
		}
		return nil, translateWriteErr("project update", err)
	}
	return updated, nil
}

// Delete removes a project permanently. Dependent rows block the delete at
// the foreign-key constraint.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM projects WHERE id = $1;`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, translateDeleteErr("project delete", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
