package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cs-exp/tracker-backend/internal/tracking/validate"
)

// ImportService runs the best-effort bulk pathway: every row is attempted
// independently through the normal create path and a per-row report comes
// back. This is deliberately a different operation from the all-or-nothing
// YLineService.BulkCreate.
type ImportService struct {
	cspLOBs *CSPLOBService
	yLines  *YLineService
}

func NewImportService(cspLOBs *CSPLOBService, yLines *YLineService) *ImportService {
	return &ImportService{cspLOBs: cspLOBs, yLines: yLines}
}

// RowError pins a failure to its 1-based row in the import payload.
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportReport summarizes a best-effort import run.
type ImportReport struct {
	BatchID   string     `json:"batch_id"`
	Succeeded int        `json:"succeeded"`
	Failed    int        `json:"failed"`
	Errors    []RowError `json:"errors,omitempty"`
}

// ImportCSPLOBs creates each mapping independently. Rows that fail
// validation or conflict with existing rows are reported and skipped;
// successful rows stay committed.
func (s *ImportService) ImportCSPLOBs(ctx context.Context, rows []CSPLOBCreate) (*ImportReport, error) {
	report := &ImportReport{BatchID: uuid.New().String()}
	for i, row := range rows {
		if _, err := s.cspLOBs.Create(ctx, row); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, RowError{Row: i + 1, Error: err.Error()})
			continue
		}
		report.Succeeded++
	}
	return report, nil
}

// YLineImportRow is the legacy import payload that still carries the
// single pre-award/post-award flag pair.
type YLineImportRow struct {
	YLineCreate
	PreAward  bool
	PostAward bool
}

// ImportYLines creates each Y-Line independently under the given project.
// The legacy flag pair is validated per row; a record may not be flagged
// pre-award and post-award at once.
func (s *ImportService) ImportYLines(ctx context.Context, projectID int64, rows []YLineImportRow) (*ImportReport, error) {
	report := &ImportReport{BatchID: uuid.New().String()}
	for i, row := range rows {
		if err := validate.AwardFlags(row.PreAward, row.PostAward); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, RowError{Row: i + 1, Error: err.Error()})
			continue
		}
		in := row.YLineCreate
		if in.PreAwardStatus == "" && row.PreAward {
			in.PreAwardStatus = "pre-award"
		}
		if in.PostAwardStatus == "" && row.PostAward {
			in.PostAwardStatus = "post-award"
		}
		if _, err := s.yLines.Create(ctx, projectID, in); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, RowError{Row: i + 1, Error: err.Error()})
			continue
		}
		report.Succeeded++
	}
	return report, nil
}
