package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
)

// ServiceAreaRepository provides persistence operations for a project's
// geographic coverage records.
type ServiceAreaRepository struct {
	db *sql.DB
}

func NewServiceAreaRepository(db *sql.DB) *ServiceAreaRepository {
	return &ServiceAreaRepository{db: db}
}

const serviceAreaCols = `id, project_id, region, state, county, report_include, max_mileage, created_at, updated_at`

func scanServiceArea(row interface{ Scan(...any) error }) (*domain.ServiceArea, error) {
	var a domain.ServiceArea
	err := row.Scan(&a.ID, &a.ProjectID, &a.Region, &a.State, &a.County,
		&a.ReportInclude, &a.MaxMileage, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ServiceAreaRepository) Insert(ctx context.Context, a *domain.ServiceArea) (*domain.ServiceArea, error) {
	const q = `
INSERT INTO service_areas (project_id, region, state, county, report_include, max_mileage)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + serviceAreaCols + `;
`
	created, err := scanServiceArea(r.db.QueryRowContext(ctx, q,
		a.ProjectID, a.Region, a.State, a.County, a.ReportInclude, a.MaxMileage))
	if err != nil {
		return nil, translateWriteErr("service area insert", err)
	}
	return created, nil
}

func (r *ServiceAreaRepository) Get(ctx context.Context, id int64) (*domain.ServiceArea, error) {
	const q = `SELECT ` + serviceAreaCols + ` FROM service_areas WHERE id = $1;`
	a, err := scanServiceArea(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("service area %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

// ListByProject returns a project's coverage records, most recent first.
func (r *ServiceAreaRepository) ListByProject(ctx context.Context, projectID int64, skip, limit int) ([]domain.ServiceArea, error) {
	if limit <= 0 {
		limit = 100
	}
	const q = `
SELECT ` + serviceAreaCols + `
FROM service_areas
WHERE project_id = $1
ORDER BY updated_at DESC
LIMIT $2 OFFSET $3;
`
	rows, err := r.db.QueryContext(ctx, q, projectID, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ServiceArea, 0, 16)
	for rows.Next() {
		a, err := scanServiceArea(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *ServiceAreaRepository) Update(ctx context.Context, a *domain.ServiceArea) (*domain.ServiceArea, error) {
	const q = `
UPDATE service_areas
SET region = $2, state = $3, county = $4, report_include = $5, max_mileage = $6, updated_at = now()
WHERE id = $1
RETURNING ` + serviceAreaCols + `;
`
	updated, err := scanServiceArea(r.db.QueryRowContext(ctx, q,
		a.ID, a.Region, a.State, a.County, a.ReportInclude, a.MaxMileage))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("service area %d: %w", a.ID, domain.ErrNotFound)
		}
		return nil, translateWriteErr("service area update", err)
	}
	return updated, nil
}

func (r *ServiceAreaRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM service_areas WHERE id = $1;`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, translateDeleteErr("service area delete", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
