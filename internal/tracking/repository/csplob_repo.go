package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
)

// CSPLOBRepository provides persistence operations for CSP/LOB mappings.
type CSPLOBRepository struct {
	db *sql.DB
}

func NewCSPLOBRepository(db *sql.DB) *CSPLOBRepository {
	return &CSPLOBRepository{db: db}
}

const cspLOBCols = `id, project_id, csp_code, lob_type, description, status, effective_date, termination_date, created_at, updated_at`

func scanCSPLOB(row interface{ Scan(...any) error }) (*domain.CSPLOB, error) {
	var m domain.CSPLOB
	err := row.Scan(&m.ID, &m.ProjectID, &m.CSPCode, &m.LOBType, &m.Description,
		&m.Status, &m.EffectiveDate, &m.TerminationDate, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Insert persists a new mapping. A duplicate (csp_code, lob_type) pair comes
// back as a ConflictError; a missing project as ErrNotFound.
func (r *CSPLOBRepository) Insert(ctx context.Context, m *domain.CSPLOB) (*domain.CSPLOB, error) {
	const q = `
INSERT INTO csp_lob_mappings (project_id, csp_code, lob_type, description, status, effective_date, termination_date)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + cspLOBCols + `;
`
	created, err := scanCSPLOB(r.db.QueryRowContext(ctx, q,
		m.ProjectID, m.CSPCode, m.LOBType, m.Description, m.Status, m.EffectiveDate, m.TerminationDate))
	if err != nil {
		return nil, translateWriteErr("csp_lob insert", err)
	}
	return created, nil
}

// Get fetches a mapping by identifier.
func (r *CSPLOBRepository) Get(ctx context.Context, id int64) (*domain.CSPLOB, error) {
	const q = `SELECT ` + cspLOBCols + ` FROM csp_lob_mappings WHERE id = $1;`
	m, err := scanCSPLOB(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("csp_lob %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return m, nil
}

// CSPLOBFilter holds the optional list predicates.
type CSPLOBFilter struct {
	ProjectID *int64
	LOBType   *domain.LOBType
	Status    *domain.CSPStatus
	Skip      int
	Limit     int
}

// List returns mappings matching the filter, most recently edited first.
func (r *CSPLOBRepository) List(ctx context.Context, f CSPLOBFilter) ([]domain.CSPLOB, error) {
	q := `SELECT ` + cspLOBCols + ` FROM csp_lob_mappings WHERE 1=1`
	args := make([]any, 0, 4)

	if f.ProjectID != nil {
		args = append(args, *f.ProjectID)
		q += fmt.Sprintf(" AND project_id = $%d", len(args))
	}
	if f.LOBType != nil {
		args = append(args, *f.LOBType)
		q += fmt.Sprintf(" AND lob_type = $%d", len(args))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		q += fmt.Sprintf(" AND status = $%d", len(args))
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

	out := make([]domain.CSPLOB, 0, 16)
	for rows.Next() {
		m, err := scanCSPLOB(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

// Update persists the full updatable field set of a merged mapping.
func (r *CSPLOBRepository) Update(ctx context.Context, m *domain.CSPLOB) (*domain.CSPLOB, error) {
	const q = `
UPDATE csp_lob_mappings
SET csp_code = $2, lob_type = $3, description = $4, status = $5,
    effective_date = $6, termination_date = $7, updated_at = now()
WHERE id = $1
RETURNING ` + cspLOBCols + `;
`
	updated, err := scanCSPLOB(r.db.QueryRowContext(ctx, q,
		m.ID, m.CSPCode, m.LOBType, m.Description, m.Status, m.EffectiveDate, m.TerminationDate))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("csp_lob %d: %w", m.ID, domain.ErrNotFound)
		}
		return nil, translateWriteErr("csp_lob update", err)
	}
	return updated, nil
}

// Delete removes a mapping permanently.
func (r *CSPLOBRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM csp_lob_mappings WHERE id = $1;`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, translateDeleteErr("csp_lob delete", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
