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

func setupImportService(t *testing.T) (*ImportService, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	projects := repository.NewProjectRepository(db)
	cspLOBs := NewCSPLOBService(repository.NewCSPLOBRepository(db), projects)
	yLines := NewYLineService(repository.NewYLineRepository(db), projects)
	return NewImportService(cspLOBs, yLines), mock, db
}

func TestImportService_ImportCSPLOBs(t *testing.T) {
	svc, mock, db := setupImportService(t)
	defer db.Close()

	effective := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	// Row 1 is valid and commits; row 2 fails validation and is skipped.
	projectExists(mock, 1, true)
	mock.ExpectQuery(`INSERT INTO csp_lob_mappings`).
		WillReturnRows(storedCSPLOBRows(domain.CSPLOB{
			ID: 1, ProjectID: 1, CSPCode: "CSP001", LOBType: domain.LOBMedical,
			Status: domain.CSPActive, EffectiveDate: effective,
		}))

	report, err := svc.ImportCSPLOBs(context.Background(), []CSPLOBCreate{
		{ProjectID: 1, CSPCode: "CSP001", LOBType: domain.LOBMedical,
			Status: domain.CSPActive, EffectiveDate: effective},
		{ProjectID: 1, CSPCode: "x", LOBType: domain.LOBMedical,
			Status: domain.CSPActive, EffectiveDate: effective},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, report.BatchID)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 2, report.Errors[0].Row)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImportService_ImportYLines(t *testing.T) {
	svc, mock, db := setupImportService(t)
	defer db.Close()

	// Row 1 carries both award flags and is rejected before any store call;
	// row 2 is valid.
	projectExists(mock, 1, true)
	mock.ExpectQuery(`INSERT INTO y_lines`).
		WillReturnRows(storedYLineRows(domain.YLine{
			ID: 1, ProjectID: 1, IPANumber: "IPA-2", ProductCode: "PC",
			Status: domain.YLinePending,
		}))

	report, err := svc.ImportYLines(context.Background(), 1, []YLineImportRow{
		{YLineCreate: YLineCreate{IPANumber: "IPA-1", ProductCode: "PC"}, PreAward: true, PostAward: true},
		{YLineCreate: YLineCreate{IPANumber: "IPA-2", ProductCode: "PC"}, PreAward: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 1, report.Errors[0].Row)
	require.NoError(t, mock.ExpectationsWereMet())
}
