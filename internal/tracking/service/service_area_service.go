package service

import (
	"context"
	"fmt"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
	"github.com/cs-exp/tracker-backend/internal/tracking/repository"
	"github.com/cs-exp/tracker-backend/internal/tracking/validate"
)

// ServiceAreaCreate is the payload for recording coverage under a project.
type ServiceAreaCreate struct {
	ProjectID     int64
	Region        string
	State         string
	County        string
	ReportInclude bool
	MaxMileage    *int
}

// ServiceAreaService handles coverage-record business logic.
type ServiceAreaService struct {
	repo     *repository.ServiceAreaRepository
	projects *repository.ProjectRepository
}

func NewServiceAreaService(repo *repository.ServiceAreaRepository, projects *repository.ProjectRepository) *ServiceAreaService {
	return &ServiceAreaService{repo: repo, projects: projects}
}

func (s *ServiceAreaService) Create(ctx context.Context, in ServiceAreaCreate) (*domain.ServiceArea, error) {
	if err := validate.StateCode(in.State); err != nil {
		return nil, err
	}
	if err := validate.Mileage(in.MaxMileage); err != nil {
		return nil, err
	}

	ok, err := s.projects.Exists(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("project %d: %w", in.ProjectID, domain.ErrNotFound)
	}

	return s.repo.Insert(ctx, &domain.ServiceArea{
		ProjectID:     in.ProjectID,
		Region:        in.Region,
		State:         in.State,
		County:        in.County,
		ReportInclude: in.ReportInclude,
		MaxMileage:    in.MaxMileage,
	})
}

func (s *ServiceAreaService) Get(ctx context.Context, id int64) (*domain.ServiceArea, error) {
	return s.repo.Get(ctx, id)
}

func (s *ServiceAreaService) ListByProject(ctx context.Context, projectID int64, skip, limit int) ([]domain.ServiceArea, error) {
	return s.repo.ListByProject(ctx, projectID, skip, limit)
}

func (s *ServiceAreaService) Update(ctx context.Context, id int64, patch domain.ServiceAreaPatch) (*domain.ServiceArea, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return current, nil
	}

	if patch.State != nil {
		if err := validate.StateCode(*patch.State); err != nil {
			return nil, err
		}
		current.State = *patch.State
	}
	if patch.MaxMileage != nil {
		if err := validate.Mileage(patch.MaxMileage); err != nil {
			return nil, err
		}
		current.MaxMileage = patch.MaxMileage
	}
	if patch.Region != nil {
		current.Region = *patch.Region
	}
	if patch.County != nil {
		current.County = *patch.County
	}
	if patch.ReportInclude != nil {
		current.ReportInclude = *patch.ReportInclude
	}

	return s.repo.Update(ctx, current)
}

func (s *ServiceAreaService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
