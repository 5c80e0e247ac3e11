package service

import (
	"context"
	"fmt"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
	"github.com/cs-exp/tracker-backend/internal/tracking/repository"
	"github.com/cs-exp/tracker-backend/internal/tracking/validate"
)

// YLineCreate is the payload for creating a Y-Line under a project.
type YLineCreate struct {
	IPANumber       string
	ProductCode     string
	Description     string
	PreAwardStatus  string
	PostAwardStatus string
	EstimatedValue  *float64
	ActualValue     *float64
	Status          domain.YLineStatus
}

// YLineService handles Y-Line business logic, including the two bulk
// pathways: BulkCreate is all-or-nothing, BulkUpdateStatus rejects the whole
// batch on any bad id or forbidden transition.
type YLineService struct {
	repo     *repository.YLineRepository
	projects *repository.ProjectRepository
}

func NewYLineService(repo *repository.YLineRepository, projects *repository.ProjectRepository) *YLineService {
	return &YLineService{repo: repo, projects: projects}
}

func validateYLineCreate(in *YLineCreate) error {
	if err := validate.IPANumber(in.IPANumber); err != nil {
		return err
	}
	if err := validate.ProductCode(in.ProductCode); err != nil {
		return err
	}
	if err := validate.MonetaryValues(in.EstimatedValue, in.ActualValue); err != nil {
		return err
	}
	if in.Status == "" {
		in.Status = domain.YLinePending
	}
	if _, err := domain.ParseYLineStatus(string(in.Status)); err != nil {
		return err
	}
	return nil
}

// Create validates the payload, verifies the project exists, and persists
// the Y-Line. A duplicate IPA number surfaces as a ConflictError.
func (s *YLineService) Create(ctx context.Context, projectID int64, in YLineCreate) (*domain.YLine, error) {
	if err := validateYLineCreate(&in); err != nil {
		return nil, err
	}

	ok, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("project %d: %w", projectID, domain.ErrNotFound)
	}

	return s.repo.Insert(ctx, yLineFromCreate(projectID, in))
}

func (s *YLineService) Get(ctx context.Context, id int64) (*domain.YLine, error) {
	return s.repo.Get(ctx, id)
}

func (s *YLineService) List(ctx context.Context, f repository.YLineFilter) ([]domain.YLine, error) {
	return s.repo.List(ctx, f)
}

// Update merges the patch into the stored Y-Line and persists the result.
// Monetary values are re-checked whenever either changes; the transition
// check runs only when the patch carries a status.
func (s *YLineService) Update(ctx context.Context, id int64, patch domain.YLinePatch) (*domain.YLine, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return current, nil
	}

	if patch.EstimatedValue != nil || patch.ActualValue != nil {
		estimated := current.EstimatedValue
		actual := current.ActualValue
		if patch.EstimatedValue != nil {
			estimated = patch.EstimatedValue
		}
		if patch.ActualValue != nil {
			actual = patch.ActualValue
		}
		if err := validate.MonetaryValues(estimated, actual); err != nil {
			return nil, err
		}
		current.EstimatedValue = estimated
		current.ActualValue = actual
	}
	if patch.Status != nil {
		if _, err := domain.ParseYLineStatus(string(*patch.Status)); err != nil {
			return nil, err
		}
		if err := validate.YLineStatusTransition(current.Status, *patch.Status); err != nil {
			return nil, err
		}
		current.Status = *patch.Status
	}
	if patch.ProductCode != nil {
		if err := validate.ProductCode(*patch.ProductCode); err != nil {
			return nil, err
		}
		current.ProductCode = *patch.ProductCode
	}
	if patch.Description != nil {
		current.Description = *patch.Description
	}
	if patch.PreAwardStatus != nil {
		current.PreAwardStatus = *patch.PreAwardStatus
	}
	if patch.PostAwardStatus != nil {
		current.PostAwardStatus = *patch.PostAwardStatus
	}

	return s.repo.Update(ctx, current)
}

// Delete removes a Y-Line permanently.
func (s *YLineService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// BulkCreate persists all payloads under one project as a single atomic
// unit. The project is checked once and every payload is validated before
// any insert runs; a failure anywhere leaves the store untouched.
func (s *YLineService) BulkCreate(ctx context.Context, projectID int64, payloads []YLineCreate) ([]domain.YLine, error) {
	ok, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("project %d: %w", projectID, domain.ErrNotFound)
	}

	rows := make([]*domain.YLine, 0, len(payloads))
	for i := range payloads {
		if err := validateYLineCreate(&payloads[i]); err != nil {
			return nil, err
		}
		rows = append(rows, yLineFromCreate(projectID, payloads[i]))
	}

	return s.repo.InsertBatch(ctx, rows)
}

// BulkUpdateStatus moves every listed Y-Line to the target status. If any id
// is unknown the whole batch fails before any mutation; if any record's
// current status forbids the transition the whole batch is rejected.
func (s *YLineService) BulkUpdateStatus(ctx context.Context, ids []int64, status domain.YLineStatus) ([]domain.YLine, error) {
	if _, err := domain.ParseYLineStatus(string(status)); err != nil {
		return nil, err
	}

	current, err := s.repo.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(current) != len(ids) {
		return nil, fmt.Errorf("y_lines: %d of %d found: %w", len(current), len(ids), domain.ErrNotFound)
	}

	for _, y := range current {
		if err := validate.YLineStatusTransition(y.Status, status); err != nil {
			return nil, err
		}
	}

	return s.repo.UpdateStatusBatch(ctx, ids, status)
}

func yLineFromCreate(projectID int64, in YLineCreate) *domain.YLine {
	return &domain.YLine{
		ProjectID:       projectID,
		IPANumber:       in.IPANumber,
		ProductCode:     in.ProductCode,
		Description:     in.Description,
		PreAwardStatus:  in.PreAwardStatus,
		PostAwardStatus: in.PostAwardStatus,
		EstimatedValue:  in.EstimatedValue,
		ActualValue:     in.ActualValue,
		Status:          in.Status,
	}
}
