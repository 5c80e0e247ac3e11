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

func setupStatusHistoryService(t *testing.T) (*StatusHistoryService, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	svc := NewStatusHistoryService(
		repository.NewStatusHistoryRepository(db),
		repository.NewProjectRepository(db),
	)
	return svc, mock, db
}

func storedStatusEntryRows(entries ...domain.ProjectStatusEntry) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "project_id", "status", "status_date", "updated_by", "comments",
	})
	for _, e := range entries {
		rows.AddRow(e.ID, e.ProjectID, e.Status, e.StatusDate, e.UpdatedBy, e.Comments)
	}
	return rows
}

func TestStatusHistoryService_Record(t *testing.T) {
	t.Run("unknown status rejected without touching store", func(t *testing.T) {
		svc, mock, db := setupStatusHistoryService(t)
		defer db.Close()

		_, err := svc.Record(context.Background(), StatusEntryCreate{
			ProjectID: 1, Status: "archived",
		})
		assert.True(t, domain.IsValidation(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown project rejected before insert", func(t *testing.T) {
		svc, mock, db := setupStatusHistoryService(t)
		defer db.Close()

		projectExists(mock, 8, false)

		_, err := svc.Record(context.Background(), StatusEntryCreate{
			ProjectID: 8, Status: domain.ProjectStatusActive,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("valid entry appended", func(t *testing.T) {
		svc, mock, db := setupStatusHistoryService(t)
		defer db.Close()

		now := time.Now()
		projectExists(mock, 1, true)
		mock.ExpectQuery(`INSERT INTO project_status_history`).
			WithArgs(int64(1), domain.ProjectStatusActive, "jdoe", "kickoff complete").
			WillReturnRows(storedStatusEntryRows(domain.ProjectStatusEntry{
				ID: 1, ProjectID: 1, Status: domain.ProjectStatusActive,
				StatusDate: now, UpdatedBy: "jdoe", Comments: "kickoff complete",
			}))

		e, err := svc.Record(context.Background(), StatusEntryCreate{
			ProjectID: 1, Status: domain.ProjectStatusActive,
			UpdatedBy: "jdoe", Comments: "kickoff complete",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ProjectStatusActive, e.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStatusHistoryService_Latest(t *testing.T) {
	t.Run("returns the newest entry", func(t *testing.T) {
		svc, mock, db := setupStatusHistoryService(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM project_status_history .+ LIMIT 1`).
			WithArgs(int64(1)).
			WillReturnRows(storedStatusEntryRows(domain.ProjectStatusEntry{
				ID: 9, ProjectID: 1, Status: domain.ProjectStatusReview,
				StatusDate: time.Now(), UpdatedBy: "jdoe",
			}))

		e, err := svc.Latest(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, domain.ProjectStatusReview, e.Status)
	})

	t.Run("empty trail surfaces not found", func(t *testing.T) {
		svc, mock, db := setupStatusHistoryService(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM project_status_history .+ LIMIT 1`).
			WithArgs(int64(2)).
			WillReturnError(sql.ErrNoRows)

		_, err := svc.Latest(context.Background(), 2)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestStatusHistoryService_History(t *testing.T) {
	svc, mock, db := setupStatusHistoryService(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM project_status_history`).
		WithArgs(int64(1), 100, 0).
		WillReturnRows(storedStatusEntryRows(
			domain.ProjectStatusEntry{ID: 2, ProjectID: 1, Status: domain.ProjectStatusActive, StatusDate: now},
			domain.ProjectStatusEntry{ID: 1, ProjectID: 1, Status: domain.ProjectStatusNew, StatusDate: now.Add(-time.Hour)},
		))

	entries, err := svc.History(context.Background(), 1, 0, 100)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.ProjectStatusActive, entries[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
