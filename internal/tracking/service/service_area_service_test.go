package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
	"github.com/cs-exp/tracker-backend/internal/tracking/repository"
)

func setupServiceAreaService(t *testing.T) (*ServiceAreaService, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	svc := NewServiceAreaService(
		repository.NewServiceAreaRepository(db),
		repository.NewProjectRepository(db),
	)
	return svc, mock, db
}

func storedServiceAreaRows(a domain.ServiceArea) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "project_id", "region", "state", "county", "report_include",
		"max_mileage", "created_at", "updated_at",
	}).AddRow(a.ID, a.ProjectID, a.Region, a.State, a.County, a.ReportInclude,
		a.MaxMileage, a.CreatedAt, a.UpdatedAt)
}

func TestServiceAreaService_Create(t *testing.T) {
	t.Run("malformed state code rejected without touching store", func(t *testing.T) {
		svc, mock, db := setupServiceAreaService(t)
		defer db.Close()

		_, err := svc.Create(context.Background(), ServiceAreaCreate{
			ProjectID: 1, State: "Ohio",
		})
		assert.True(t, domain.IsValidation(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative mileage rejected, zero accepted", func(t *testing.T) {
		svc, mock, db := setupServiceAreaService(t)
		defer db.Close()

		negative := -1
		_, err := svc.Create(context.Background(), ServiceAreaCreate{
			ProjectID: 1, State: "OH", MaxMileage: &negative,
		})
		assert.True(t, domain.IsValidation(err))

		now := time.Now()
		zero := 0
		projectExists(mock, 1, true)
		mock.ExpectQuery(`INSERT INTO service_areas`).
			WillReturnRows(storedServiceAreaRows(domain.ServiceArea{
				ID: 2, ProjectID: 1, State: "OH", MaxMileage: &zero,
				ReportInclude: true, CreatedAt: now, UpdatedAt: now,
			}))

		a, err := svc.Create(context.Background(), ServiceAreaCreate{
			ProjectID: 1, State: "OH", ReportInclude: true, MaxMileage: &zero,
		})
		require.NoError(t, err)
		require.NotNil(t, a.MaxMileage)
		assert.Equal(t, 0, *a.MaxMileage)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown project rejected before insert", func(t *testing.T) {
		svc, mock, db := setupServiceAreaService(t)
		defer db.Close()

		projectExists(mock, 42, false)

		_, err := svc.Create(context.Background(), ServiceAreaCreate{
			ProjectID: 42, Region: "Midwest", State: "OH",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestServiceAreaService_Update(t *testing.T) {
	stored := domain.ServiceArea{
		ID: 5, ProjectID: 1, Region: "Midwest", State: "OH", County: "Franklin",
		ReportInclude: true,
	}

	t.Run("empty patch returns stored record unchanged", func(t *testing.T) {
		svc, mock, db := setupServiceAreaService(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM service_areas WHERE id`).
			WithArgs(int64(5)).
			WillReturnRows(storedServiceAreaRows(stored))

		a, err := svc.Update(context.Background(), 5, domain.ServiceAreaPatch{})
		require.NoError(t, err)
		assert.Equal(t, "Franklin", a.County)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bad state patch rejected before write", func(t *testing.T) {
		svc, mock, db := setupServiceAreaService(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM service_areas WHERE id`).
			WithArgs(int64(5)).
			WillReturnRows(storedServiceAreaRows(stored))

		bad := "O1"
		_, err := svc.Update(context.Background(), 5, domain.ServiceAreaPatch{State: &bad})
		assert.True(t, domain.IsValidation(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("county patch persisted", func(t *testing.T) {
		svc, mock, db := setupServiceAreaService(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM service_areas WHERE id`).
			WithArgs(int64(5)).
			WillReturnRows(storedServiceAreaRows(stored))

		updated := stored
		updated.County = "Delaware"
		mock.ExpectQuery(`UPDATE service_areas`).
			WillReturnRows(storedServiceAreaRows(updated))

		county := "Delaware"
		a, err := svc.Update(context.Background(), 5, domain.ServiceAreaPatch{County: &county})
		require.NoError(t, err)
		assert.Equal(t, "Delaware", a.County)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
