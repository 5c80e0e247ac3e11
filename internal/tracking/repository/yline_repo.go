package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
)

// YLineRepository provides persistence operations for Y-Lines.
type YLineRepository struct {
	db *sql.DB
}

func NewYLineRepository(db *sql.DB) *YLineRepository {
	return &YLineRepository{db: db}
}

const yLineCols = `id, project_id, ipa_number, product_code, description, pre_award_status, post_award_status, estimated_value, actual_value, status, created_at, updated_at`

func scanYLine(row interface{ Scan(...any) error }) (*domain.YLine, error) {
	var y domain.YLine
	err := row.Scan(&y.ID, &y.ProjectID, &y.IPANumber, &y.ProductCode, &y.Description,
		&y.PreAwardStatus, &y.PostAwardStatus, &y.EstimatedValue, &y.ActualValue,
		&y.Status, &y.CreatedAt, &y.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &y, nil
}

const insertYLineSQL = `
INSERT INTO y_lines (project_id, ipa_number, product_code, description, pre_award_status, post_award_status, estimated_value, actual_value, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + yLineCols + `;
`

// Insert persists a new Y-Line. A duplicate IPA number comes back as a
// ConflictError; a missing project as ErrNotFound.
func (r *YLineRepository) Insert(ctx context.Context, y *domain.YLine) (*domain.YLine, error) {
	created, err := scanYLine(r.db.QueryRowContext(ctx, insertYLineSQL,
		y.ProjectID, y.IPANumber, y.ProductCode, y.Description,
		y.PreAwardStatus, y.PostAwardStatus, y.EstimatedValue, y.ActualValue, y.Status))
	if err != nil {
		return nil, translateWriteErr("y_line insert", err)
	}
	return created, nil
}

// InsertBatch persists all rows inside one transaction. The first failure
// rolls back everything written so far; either every row commits or none.
func (r *YLineRepository) InsertBatch(ctx context.Context, ys []*domain.YLine) ([]domain.YLine, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	out := make([]domain.YLine, 0, len(ys))
	for _, y := range ys {
		created, err := scanYLine(tx.QueryRowContext(ctx, insertYLineSQL,
			y.ProjectID, y.IPANumber, y.ProductCode, y.Description,
			y.PreAwardStatus, y.PostAwardStatus, y.EstimatedValue, y.ActualValue, y.Status))
		if err != nil {
			return nil, translateWriteErr("y_line batch insert", err)
		}
		out = append(out, *created)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a Y-Line by identifier.
func (r *YLineRepository) Get(ctx context.Context, id int64) (*domain.YLine, error) {
	const q = `SELECT ` + yLineCols + ` FROM y_lines WHERE id = $1;`
	y, err := scanYLine(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("y_line %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return y, nil
}

// GetMany fetches all Y-Lines whose identifiers are in ids. Missing ids are
// simply absent from the result; the caller compares counts.
func (r *YLineRepository) GetMany(ctx context.Context, ids []int64) ([]domain.YLine, error) {
	const q = `SELECT ` + yLineCols + ` FROM y_lines WHERE id = ANY($1);`
	rows, err := r.db.QueryContext(ctx, q, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.YLine, 0, len(ids))
	for rows.Next() {
		y, err := scanYLine(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *y)
	}
	return out, rows.Err()
}

// YLineFilter holds the optional list predicates. Value bounds apply to the
// estimated value; Search matches IPA number, product code, and description.
type YLineFilter struct {
	ProjectID *int64
	Status    *domain.YLineStatus
	MinValue  *float64
	MaxValue  *float64
	Search    string
	Skip      int
	Limit     int
}

// List returns Y-Lines matching the filter, most recently edited first.
func (r *YLineRepository) List(ctx context.Context, f YLineFilter) ([]domain.YLine, error) {
	q := `SELECT ` + yLineCols + ` FROM y_lines WHERE 1=1`
	args := make([]any, 0, 6)

	if f.ProjectID != nil {
		args = append(args, *f.ProjectID)
		q += fmt.Sprintf(" AND project_id = $%d", len(args))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		q += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.MinValue != nil {
		args = append(args, *f.MinValue)
		q += fmt.Sprintf(" AND estimated_value >= $%d", len(args))
	}
	if f.MaxValue != nil {
		args = append(args, *f.MaxValue)
		q += fmt.Sprintf(" AND estimated_value <= $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		q += fmt.Sprintf(" AND (ipa_number ILIKE $%d OR product_code ILIKE $%d OR description ILIKE $%d)", n, n, n)
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

	out := make([]domain.YLine, 0, 16)
	for rows.Next() {
		y, err := scanYLine(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *y)
	}
	return out, rows.Err()
}

// Update persists the full updatable field set of a merged Y-Line. The IPA
// number is the natural key and is never rewritten here.
func (r *YLineRepository) Update(ctx context.Context, y *domain.YLine) (*domain.YLine, error) {
	const q = `
UPDATE y_lines
SET product_code = $2, description = $3, pre_award_status = $4, post_award_status = $5,
    estimated_value = $6, actual_value = $7, status = $8, updated_at = now()
WHERE id = $1
RETURNING ` + yLineCols + `;
`
	updated, err := scanYLine(r.db.QueryRowContext(ctx, q,
		y.ID, y.ProductCode, y.Description, y.PreAwardStatus, y.PostAwardStatus,
		y.EstimatedValue, y.ActualValue, y.Status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("y_line %d: %w", y.ID, domain.ErrNotFound)
		}
		return nil, translateWriteErr("y_line update", err)
	}
	return updated, nil
}

// UpdateStatusBatch sets the status of every listed Y-Line inside one
// transaction and returns the updated rows.
func (r *YLineRepository) UpdateStatusBatch(ctx context.Context, ids []int64, status domain.YLineStatus) ([]domain.YLine, error) {
	const q = `
UPDATE y_lines
SET status = $2, updated_at = now()
WHERE id = ANY($1)
RETURNING ` + yLineCols + `;
`
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, q, pq.Array(ids), status)
	if err != nil {
		return nil, translateWriteErr("y_line status batch", err)
	}

	out := make([]domain.YLine, 0, len(ids))
	for rows.Next() {
		y, err := scanYLine(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, *y)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if len(out) != len(ids) {
		// A row vanished between the service's load and this write.
		return nil, fmt.Errorf("y_lines: %w", domain.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a Y-Line permanently.
func (r *YLineRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM y_lines WHERE id = $1;`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, translateDeleteErr("y_line delete", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
