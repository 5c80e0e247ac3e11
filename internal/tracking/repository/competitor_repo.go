package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
)

// CompetitorRepository provides persistence operations for
// competitive-landscape entries.
type CompetitorRepository struct {
	db *sql.DB
}

func NewCompetitorRepository(db *sql.DB) *CompetitorRepository {
	return &CompetitorRepository{db: db}
}

const competitorCols = `id, project_id, payor, product, product_code, ei, cs, mr, last_edited_by, created_at, updated_at`

func scanCompetitor(row interface{ Scan(...any) error }) (*domain.Competitor, error) {
	var c domain.Competitor
	err := row.Scan(&c.ID, &c.ProjectID, &c.Payor, &c.Product, &c.ProductCode,
		&c.EI, &c.CS, &c.MR, &c.LastEditedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompetitorRepository) Insert(ctx context.Context, c *domain.Competitor) (*domain.Competitor, error) {
	const q = `
INSERT INTO competitors (project_id, payor, product, product_code, ei, cs, mr, last_edited_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + competitorCols + `;
`
	created, err := scanCompetitor(r.db.QueryRowContext(ctx, q,
		c.ProjectID, c.Payor, c.Product, c.ProductCode, c.EI, c.CS, c.MR, c.LastEditedBy))
	if err != nil {
		return nil, translateWriteErr("competitor insert", err)
	}
	return created, nil
}

func (r *CompetitorRepository) Get(ctx context.Context, id int64) (*domain.Competitor, error) {
	const q = `SELECT ` + competitorCols + ` FROM competitors WHERE id = $1;`
	c, err := scanCompetitor(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("competitor %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

// ListByProject returns a project's competitor entries, most recent first.
func (r *CompetitorRepository) ListByProject(ctx context.Context, projectID int64, skip, limit int) ([]domain.Competitor, error) {
	if limit <= 0 {
		limit = 100
	}
	const q = `
SELECT ` + competitorCols + `
FROM competitors
WHERE project_id = $1
ORDER BY updated_at DESC
LIMIT $2 OFFSET $3;
`
	rows, err := r.db.QueryContext(ctx, q, projectID, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Competitor, 0, 16)
	for rows.Next() {
		c, err := scanCompetitor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *CompetitorRepository) Update(ctx context.Context, c *domain.Competitor) (*domain.Competitor, error) {
	const q = `
UPDATE competitors
SET payor = $2, product = $3, product_code = $4, ei = $5, cs = $6, mr = $7,
    last_edited_by = $8, updated_at = now()
WHERE id = $1
RETURNING ` + competitorCols + `;
`
	updated, err := scanCompetitor(r.db.QueryRowContext(ctx, q,
		c.ID, c.Payor, c.Product, c.ProductCode, c.EI, c.CS, c.MR, c.LastEditedBy))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("competitor %d: %w", c.ID, domain.ErrNotFound)
		}
		return nil, translateWriteErr("competitor update", err)
	}
	return updated, nil
}

func (r *CompetitorRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM competitors WHERE id = $1;`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, translateDeleteErr("competitor delete", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
