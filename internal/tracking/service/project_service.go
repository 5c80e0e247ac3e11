package service

import (
	"context"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
	"github.com/cs-exp/tracker-backend/internal/tracking/repository"
	"github.com/cs-exp/tracker-backend/internal/tracking/validate"
)

// ProjectCreate is the payload for creating a project. Code is optional; a
// unique code is generated when absent.
type ProjectCreate struct {
	Code         string
	Type         domain.ProjectType
	Description  string
	Analyst      string
	Manager      string
	Status       domain.ProjectStatus
	LastEditedBy string
}

// ProjectService handles project business logic.
type ProjectService struct {
	repo *repository.ProjectRepository
}

func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create validates the payload and persists a new project.
func (s *ProjectService) Create(ctx context.Context, in ProjectCreate) (*domain.Project, error) {
	if in.Code == "" {
		code, err := domain.NewProjectCode()
		if err != nil {
			return nil, err
		}
		in.Code = code
	}
	if err := validate.ProjectCode(in.Code); err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = domain.ProjectStatusNew
	}
	if _, err := domain.ParseProjectType(string(in.Type)); err != nil {
		return nil, err
	}
	if _, err := domain.ParseProjectStatus(string(in.Status)); err != nil {
		return nil, err
	}

	return s.repo.Insert(ctx, &domain.Project{
		Code:         in.Code,
		Type:         in.Type,
		Description:  in.Description,
		Analyst:      in.Analyst,
		Manager:      in.Manager,
		Status:       in.Status,
		LastEditedBy: in.LastEditedBy,
	})
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.repo.Get(ctx, id)
}

func (s *ProjectService) GetByCode(ctx context.Context, code string) (*domain.Project, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *ProjectService) List(ctx context.Context, f repository.ProjectFilter) ([]domain.Project, error) {
	return s.repo.List(ctx, f)
}

// Update merges the patch into the stored project and persists the result.
// Only validators relevant to the changed fields run. An empty patch returns
// the stored project unchanged.
func (s *ProjectService) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return current, nil
	}

	if patch.Type != nil {
		if _, err := domain.ParseProjectType(string(*patch.Type)); err != nil {
			return nil, err
		}
		current.Type = *patch.Type
	}
	if patch.Status != nil {
		if _, err := domain.ParseProjectStatus(string(*patch.Status)); err != nil {
			return nil, err
		}
		current.Status = *patch.Status
	}
	if patch.Description != nil {
		current.Description = *patch.Description
	}
	if patch.Analyst != nil {
		current.Analyst = *patch.Analyst
	}
	if patch.Manager != nil {
		current.Manager = *patch.Manager
	}
	if patch.LastEditedBy != nil {
		current.LastEditedBy = *patch.LastEditedBy
	}

	return s.repo.Update(ctx, current)
}

// Delete removes a project permanently. Dependent CSP/LOB or Y-Line rows
// block the delete at the store's foreign-key constraint.
func (s *ProjectService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
