package service

import (
	"context"
	"fmt"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
	"github.com/cs-exp/tracker-backend/internal/tracking/repository"
	"github.com/cs-exp/tracker-backend/internal/tracking/validate"
)

// CompetitorCreate is the payload for recording a competitive-landscape
// entry under a project.
type CompetitorCreate struct {
	ProjectID    int64
	Payor        string
	Product      string
	ProductCode  string
	EI           bool
	CS           bool
	MR           bool
	LastEditedBy string
}

// CompetitorService handles competitive-landscape business logic.
type CompetitorService struct {
	repo     *repository.CompetitorRepository
	projects *repository.ProjectRepository
}

func NewCompetitorService(repo *repository.CompetitorRepository, projects *repository.ProjectRepository) *CompetitorService {
	return &CompetitorService{repo: repo, projects: projects}
}

func (s *CompetitorService) Create(ctx context.Context, in CompetitorCreate) (*domain.Competitor, error) {
	if err := validate.Payor(in.Payor); err != nil {
		return nil, err
	}

	ok, err := s.projects.Exists(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("project %d: %w", in.ProjectID, domain.ErrNotFound)
	}

	return s.repo.Insert(ctx, &domain.Competitor{
		ProjectID:    in.ProjectID,
		Payor:        in.Payor,
		Product:      in.Product,
		ProductCode:  in.ProductCode,
		EI:           in.EI,
		CS:           in.CS,
		MR:           in.MR,
		LastEditedBy: in.LastEditedBy,
	})
}

func (s *CompetitorService) Get(ctx context.Context, id int64) (*domain.Competitor, error) {
	return s.repo.Get(ctx, id)
}

func (s *CompetitorService) ListByProject(ctx context.Context, projectID int64, skip, limit int) ([]domain.Competitor, error) {
	return s.repo.ListByProject(ctx, projectID, skip, limit)
}

func (s *CompetitorService) Update(ctx context.Context, id int64, patch domain.CompetitorPatch) (*domain.Competitor, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return current, nil
	}

	if patch.Payor != nil {
		if err := validate.Payor(*patch.Payor); err != nil {
			return nil, err
		}
		current.Payor = *patch.Payor
	}
	if patch.Product != nil {
		current.Product = *patch.Product
	}
	if patch.ProductCode != nil {
		current.ProductCode = *patch.ProductCode
	}
	if patch.EI != nil {
		current.EI = *patch.EI
	}
	if patch.CS != nil {
		current.CS = *patch.CS
	}
	if patch.MR != nil {
		current.MR = *patch.MR
	}
	if patch.LastEditedBy != nil {
		current.LastEditedBy = *patch.LastEditedBy
	}

	return s.repo.Update(ctx, current)
}

func (s *CompetitorService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
