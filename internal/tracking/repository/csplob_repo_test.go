package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
)

func setupCSPLOBRepo(t *testing.T) (*CSPLOBRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewCSPLOBRepository(db), mock, db
}

func cspLOBRows(m domain.CSPLOB) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "project_id", "csp_code", "lob_type", "description", "status",
		"effective_date", "termination_date", "created_at", "updated_at",
	}).AddRow(m.ID, m.ProjectID, m.CSPCode, m.LOBType, m.Description, m.Status,
		m.EffectiveDate, m.TerminationDate, m.CreatedAt, m.UpdatedAt)
}

func TestCSPLOBRepository_Insert(t *testing.T) {
	repo, mock, db := setupCSPLOBRepo(t)
	defer db.Close()

	effective := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("persists and returns store-assigned fields", func(t *testing.T) {
		want := domain.CSPLOB{
			ID: 7, ProjectID: 1, CSPCode: "CSP001", LOBType: domain.LOBMedical,
			Status: domain.CSPActive, EffectiveDate: effective,
			CreatedAt: time.Now(), UpdatedAt: time.Now(),
		}
		mock.ExpectQuery(`INSERT INTO csp_lob_mappings`).
			WithArgs(int64(1), "CSP001", domain.LOBMedical, "", domain.CSPActive, effective, nil).
			WillReturnRows(cspLOBRows(want))

		got, err := repo.Insert(context.Background(), &domain.CSPLOB{
			ProjectID: 1, CSPCode: "CSP001", LOBType: domain.LOBMedical,
			Status: domain.CSPActive, EffectiveDate: effective,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, "CSP001", got.CSPCode)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate pair maps to ConflictError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO csp_lob_mappings`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "uix_csp_lob"})

		_, err := repo.Insert(context.Background(), &domain.CSPLOB{
			ProjectID: 1, CSPCode: "CSP001", LOBType: domain.LOBMedical,
			Status: domain.CSPActive, EffectiveDate: effective,
		})
		var ce *domain.ConflictError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "uix_csp_lob", ce.Constraint)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("broken project reference maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO csp_lob_mappings`).
			WillReturnError(&pq.Error{Code: "23503"})

		_, err := repo.Insert(context.Background(), &domain.CSPLOB{
			ProjectID: 99, CSPCode: "CSP001", LOBType: domain.LOBDental,
			Status: domain.CSPActive, EffectiveDate: effective,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCSPLOBRepository_Get(t *testing.T) {
	repo, mock, db := setupCSPLOBRepo(t)
	defer db.Close()

	t.Run("missing id", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM csp_lob_mappings WHERE id`).
			WithArgs(int64(42)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), 42)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCSPLOBRepository_List(t *testing.T) {
	repo, mock, db := setupCSPLOBRepo(t)
	defer db.Close()

	t.Run("no predicates applies only pagination", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM csp_lob_mappings WHERE 1=1 ORDER BY updated_at DESC LIMIT \$1 OFFSET \$2`).
			WithArgs(100, 0).
			WillReturnRows(cspLOBRows(domain.CSPLOB{ID: 1, ProjectID: 1, CSPCode: "CSP001",
				LOBType: domain.LOBMedical, Status: domain.CSPActive,
				EffectiveDate: time.Now()}))

		out, err := repo.List(context.Background(), CSPLOBFilter{})
		require.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("predicates compose conjunctively", func(t *testing.T) {
		lob := domain.LOBPharmacy
		status := domain.CSPPending
		projectID := int64(3)
		mock.ExpectQuery(`SELECT .+ AND project_id = \$1 AND lob_type = \$2 AND status = \$3 ORDER BY updated_at DESC LIMIT \$4 OFFSET \$5`).
			WithArgs(projectID, lob, status, 10, 20).
			WillReturnRows(cspLOBRows(domain.CSPLOB{ID: 2, ProjectID: 3, CSPCode: "CSP002",
				LOBType: lob, Status: status, EffectiveDate: time.Now()}))

		out, err := repo.List(context.Background(), CSPLOBFilter{
			ProjectID: &projectID, LOBType: &lob, Status: &status, Skip: 20, Limit: 10,
		})
		require.NoError(t, err)
		assert.Len(t, out, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCSPLOBRepository_Delete(t *testing.T) {
	repo, mock, db := setupCSPLOBRepo(t)
	defer db.Close()

	t.Run("existing row", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM csp_lob_mappings`).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.Delete(context.Background(), 5)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("absent row", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM csp_lob_mappings`).
			WithArgs(int64(6)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.Delete(context.Background(), 6)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
