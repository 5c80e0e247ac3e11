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

func setupYLineRepo(t *testing.T) (*YLineRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewYLineRepository(db), mock, db
}

func yLineRows(ys ...domain.YLine) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "project_id", "ipa_number", "product_code", "description",
		"pre_award_status", "post_award_status", "estimated_value", "actual_value",
		"status", "created_at", "updated_at",
	})
	for _, y := range ys {
		rows.AddRow(y.ID, y.ProjectID, y.IPANumber, y.ProductCode, y.Description,
			y.PreAwardStatus, y.PostAwardStatus, y.EstimatedValue, y.ActualValue,
			y.Status, y.CreatedAt, y.UpdatedAt)
	}
	return rows
}

func TestYLineRepository_Insert(t *testing.T) {
	repo, mock, db := setupYLineRepo(t)
	defer db.Close()

	t.Run("duplicate ipa maps to ConflictError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO y_lines`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "y_lines_ipa_number_key"})

		_, err := repo.Insert(context.Background(), &domain.YLine{
			ProjectID: 1, IPANumber: "IPA-1", ProductCode: "PC", Status: domain.YLinePending,
		})
		var ce *domain.ConflictError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "y_lines_ipa_number_key", ce.Constraint)
	})

	t.Run("unanticipated constraint maps to IntegrityError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO y_lines`).
			WillReturnError(&pq.Error{Code: "23514", Constraint: "some_check"})

		_, err := repo.Insert(context.Background(), &domain.YLine{
			ProjectID: 1, IPANumber: "IPA-2", ProductCode: "PC", Status: domain.YLinePending,
		})
		var ie *domain.IntegrityError
		require.ErrorAs(t, err, &ie)
	})
}

func TestYLineRepository_InsertBatch(t *testing.T) {
	repo, mock, db := setupYLineRepo(t)
	defer db.Close()

	mk := func(id int64, ipa string) domain.YLine {
		return domain.YLine{ID: id, ProjectID: 1, IPANumber: ipa, ProductCode: "PC",
			Status: domain.YLinePending, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	}

	t.Run("all rows commit together", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO y_lines`).WillReturnRows(yLineRows(mk(1, "IPA-1")))
		mock.ExpectQuery(`INSERT INTO y_lines`).WillReturnRows(yLineRows(mk(2, "IPA-2")))
		mock.ExpectCommit()

		out, err := repo.InsertBatch(context.Background(), []*domain.YLine{
			{ProjectID: 1, IPANumber: "IPA-1", ProductCode: "PC", Status: domain.YLinePending},
			{ProjectID: 1, IPANumber: "IPA-2", ProductCode: "PC", Status: domain.YLinePending},
		})
		require.NoError(t, err)
		assert.Len(t, out, 2)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("mid-batch conflict rolls back everything", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO y_lines`).WillReturnRows(yLineRows(mk(3, "IPA-3")))
		mock.ExpectQuery(`INSERT INTO y_lines`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "y_lines_ipa_number_key"})
		mock.ExpectRollback()

		_, err := repo.InsertBatch(context.Background(), []*domain.YLine{
			{ProjectID: 1, IPANumber: "IPA-3", ProductCode: "PC", Status: domain.YLinePending},
			{ProjectID: 1, IPANumber: "IPA-3", ProductCode: "PC", Status: domain.YLinePending},
		})
		var ce *domain.ConflictError
		require.ErrorAs(t, err, &ce)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestYLineRepository_GetMany(t *testing.T) {
	repo, mock, db := setupYLineRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM y_lines WHERE id = ANY`).
		WithArgs(pq.Array([]int64{1, 2, 99})).
		WillReturnRows(yLineRows(
			domain.YLine{ID: 1, ProjectID: 1, IPANumber: "IPA-1", ProductCode: "PC", Status: domain.YLinePending},
			domain.YLine{ID: 2, ProjectID: 1, IPANumber: "IPA-2", ProductCode: "PC", Status: domain.YLinePending},
		))

	out, err := repo.GetMany(context.Background(), []int64{1, 2, 99})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestYLineRepository_List(t *testing.T) {
	repo, mock, db := setupYLineRepo(t)
	defer db.Close()

	t.Run("value range and search compose", func(t *testing.T) {
		minV, maxV := 100.0, 5000.0
		status := domain.YLineActive
		mock.ExpectQuery(`SELECT .+ AND status = \$1 AND estimated_value >= \$2 AND estimated_value <= \$3 AND \(ipa_number ILIKE \$4 OR product_code ILIKE \$4 OR description ILIKE \$4\) ORDER BY updated_at DESC LIMIT \$5 OFFSET \$6`).
			WithArgs(status, minV, maxV, "%IPA%", 100, 0).
			WillReturnRows(yLineRows(domain.YLine{ID: 1, ProjectID: 1, IPANumber: "IPA-1",
				ProductCode: "PC", Status: status}))

		out, err := repo.List(context.Background(), YLineFilter{
			Status: &status, MinValue: &minV, MaxValue: &maxV, Search: "IPA",
		})
		require.NoError(t, err)
		assert.Len(t, out, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent predicates mean no constraint", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM y_lines WHERE 1=1 ORDER BY updated_at DESC LIMIT \$1 OFFSET \$2`).
			WithArgs(100, 0).
			WillReturnRows(yLineRows())

		out, err := repo.List(context.Background(), YLineFilter{})
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestYLineRepository_UpdateStatusBatch(t *testing.T) {
	repo, mock, db := setupYLineRepo(t)
	defer db.Close()

	t.Run("all rows updated in one transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE y_lines`).
			WithArgs(pq.Array([]int64{1, 2}), domain.YLineActive).
			WillReturnRows(yLineRows(
				domain.YLine{ID: 1, ProjectID: 1, IPANumber: "IPA-1", ProductCode: "PC", Status: domain.YLineActive},
				domain.YLine{ID: 2, ProjectID: 1, IPANumber: "IPA-2", ProductCode: "PC", Status: domain.YLineActive},
			))
		mock.ExpectCommit()

		out, err := repo.UpdateStatusBatch(context.Background(), []int64{1, 2}, domain.YLineActive)
		require.NoError(t, err)
		assert.Len(t, out, 2)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count mismatch rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE y_lines`).
			WithArgs(pq.Array([]int64{1, 99}), domain.YLineActive).
			WillReturnRows(yLineRows(
				domain.YLine{ID: 1, ProjectID: 1, IPANumber: "IPA-1", ProductCode: "PC", Status: domain.YLineActive},
			))
		mock.ExpectRollback()

		_, err := repo.UpdateStatusBatch(context.Background(), []int64{1, 99}, domain.YLineActive)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
