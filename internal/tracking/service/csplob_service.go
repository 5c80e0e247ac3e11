package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
	"github.com/cs-exp/tracker-backend/internal/tracking/repository"
	"github.com/cs-exp/tracker-backend/internal/tracking/validate"
)

// CSPLOBCreate is the payload for creating a CSP/LOB mapping.
type CSPLOBCreate struct {
	ProjectID       int64
	CSPCode         string
	LOBType         domain.LOBType
	Description     string
	Status          domain.CSPStatus
	EffectiveDate   time.Time
	TerminationDate *time.Time
}

// CSPLOBService handles CSP/LOB mapping business logic: validate first,
// then mutate, translating store conflicts into typed outcomes.
type CSPLOBService struct {
	repo     *repository.CSPLOBRepository
	projects *repository.ProjectRepository
}

func NewCSPLOBService(repo *repository.CSPLOBRepository, projects *repository.ProjectRepository) *CSPLOBService {
	return &CSPLOBService{repo: repo, projects: projects}
}

// Create validates the payload, verifies the owning project exists, and
// persists the mapping. The store is untouched on any validation failure.
func (s *CSPLOBService) Create(ctx context.Context, in CSPLOBCreate) (*domain.CSPLOB, error) {
	if err := validate.CSPCode(in.CSPCode); err != nil {
		return nil, err
	}
	if _, err := domain.ParseLOBType(string(in.LOBType)); err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = domain.CSPActive
	}
	if _, err := domain.ParseCSPStatus(string(in.Status)); err != nil {
		return nil, err
	}
	if err := validate.DateRange(in.EffectiveDate, in.TerminationDate); err != nil {
		return nil, err
	}

	ok, err := s.projects.Exists(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("project %d: %w", in.ProjectID, domain.ErrNotFound)
	}

	return s.repo.Insert(ctx, &domain.CSPLOB{
		ProjectID:       in.ProjectID,
		CSPCode:         in.CSPCode,
		LOBType:         in.LOBType,
		Description:     in.Description,
		Status:          in.Status,
		EffectiveDate:   in.EffectiveDate,
		TerminationDate: in.TerminationDate,
	})
}

func (s *CSPLOBService) Get(ctx context.Context, id int64) (*domain.CSPLOB, error) {
	return s.repo.Get(ctx, id)
}

func (s *CSPLOBService) List(ctx context.Context, f repository.CSPLOBFilter) ([]domain.CSPLOB, error) {
	return s.repo.List(ctx, f)
}

// Update merges the patch into the stored mapping and persists the result.
// The status-transition check runs only when the patch carries a status,
// with the stored status as "current". Date ordering is re-checked whenever
// either date changes.
func (s *CSPLOBService) Update(ctx context.Context, id int64, patch domain.CSPLOBPatch) (*domain.CSPLOB, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return current, nil
	}

	if patch.CSPCode != nil {
		if err := validate.CSPCode(*patch.CSPCode); err != nil {
			return nil, err
		}
		current.CSPCode = *patch.CSPCode
	}
	if patch.LOBType != nil {
		if _, err := domain.ParseLOBType(string(*patch.LOBType)); err != nil {
			return nil, err
		}
		current.LOBType = *patch.LOBType
	}
	if patch.Status != nil {
		if _, err := domain.ParseCSPStatus(string(*patch.Status)); err != nil {
			return nil, err
		}
		if err := validate.CSPStatusTransition(current.Status, *patch.Status); err != nil {
			return nil, err
		}
		current.Status = *patch.Status
	}
	if patch.EffectiveDate != nil || patch.TerminationDate != nil {
		effective := current.EffectiveDate
		termination := current.TerminationDate
		if patch.EffectiveDate != nil {
			effective = *patch.EffectiveDate
		}
		if patch.TerminationDate != nil {
			termination = *patch.TerminationDate
		}
		if err := validate.DateRange(effective, termination); err != nil {
			return nil, err
		}
		current.EffectiveDate = effective
		current.TerminationDate = termination
	}
	if patch.Description != nil {
		current.Description = *patch.Description
	}

	return s.repo.Update(ctx, current)
}

// Delete removes a mapping permanently.
func (s *CSPLOBService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
