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

func setupProjectService(t *testing.T) (*ProjectService, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewProjectService(repository.NewProjectRepository(db)), mock, db
}

func storedProjectRows(p domain.Project) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "code", "type", "description", "analyst", "manager", "status",
		"last_edited_by", "created_at", "updated_at",
	}).AddRow(p.ID, p.Code, p.Type, p.Description, p.Analyst, p.Manager, p.Status,
		p.LastEditedBy, p.CreatedAt, p.UpdatedAt)
}

func TestProjectService_Create(t *testing.T) {
	t.Run("generates a code when absent and defaults status to new", func(t *testing.T) {
		svc, mock, db := setupProjectService(t)
		defer db.Close()

		now := time.Now()
		mock.ExpectQuery(`INSERT INTO projects`).
			WillReturnRows(storedProjectRows(domain.Project{
				ID: 1, Code: "P-11111-2222", Type: domain.ProjectTranslation,
				Status: domain.ProjectStatusNew, CreatedAt: now, UpdatedAt: now,
			}))

		p, err := svc.Create(context.Background(), ProjectCreate{Type: domain.ProjectTranslation})
		require.NoError(t, err)
		assert.NotEmpty(t, p.Code)
		assert.LessOrEqual(t, len(p.Code), 12)
		assert.Equal(t, domain.ProjectStatusNew, p.Status)
	})

	t.Run("unknown type rejected without touching store", func(t *testing.T) {
		svc, mock, db := setupProjectService(t)
		defer db.Close()

		_, err := svc.Create(context.Background(), ProjectCreate{Type: "sideproject"})
		assert.True(t, domain.IsValidation(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("overlong code rejected", func(t *testing.T) {
		svc, mock, db := setupProjectService(t)
		defer db.Close()

		_, err := svc.Create(context.Background(), ProjectCreate{
			Code: "P-12345-67890", Type: domain.ProjectQA,
		})
		assert.True(t, domain.IsValidation(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectService_Update(t *testing.T) {
	stored := domain.Project{
		ID: 4, Code: "P-12345-6789", Type: domain.ProjectReview,
		Status: domain.ProjectStatusActive, Analyst: "jdoe",
	}

	t.Run("empty patch returns stored project unchanged", func(t *testing.T) {
		svc, mock, db := setupProjectService(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM projects WHERE id`).
			WithArgs(int64(4)).
			WillReturnRows(storedProjectRows(stored))

		p, err := svc.Update(context.Background(), 4, domain.ProjectPatch{})
		require.NoError(t, err)
		assert.Equal(t, stored.Code, p.Code)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("merges only provided fields", func(t *testing.T) {
		svc, mock, db := setupProjectService(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM projects WHERE id`).
			WithArgs(int64(4)).
			WillReturnRows(storedProjectRows(stored))

		updated := stored
		updated.Analyst = "mlee"
		mock.ExpectQuery(`UPDATE projects`).
			WillReturnRows(storedProjectRows(updated))

		analyst := "mlee"
		p, err := svc.Update(context.Background(), 4, domain.ProjectPatch{Analyst: &analyst})
		require.NoError(t, err)
		assert.Equal(t, "mlee", p.Analyst)
		assert.Equal(t, stored.Status, p.Status)
	})

	t.Run("missing project", func(t *testing.T) {
		svc, mock, db := setupProjectService(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM projects WHERE id`).
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		_, err := svc.Update(context.Background(), 404, domain.ProjectPatch{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
