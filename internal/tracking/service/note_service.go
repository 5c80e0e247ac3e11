package service

import (
	"context"
	"fmt"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
	"github.com/cs-exp/tracker-backend/internal/tracking/repository"
	"github.com/cs-exp/tracker-backend/internal/tracking/validate"
)

// NoteCreate is the payload for attaching a note to a project.
type NoteCreate struct {
	ProjectID  int64
	Note       string
	ActionItem bool
	Category   string
	AuthoredBy string
}

// NoteService handles project-note business logic.
type NoteService struct {
	repo     *repository.NoteRepository
	projects *repository.ProjectRepository
}

func NewNoteService(repo *repository.NoteRepository, projects *repository.ProjectRepository) *NoteService {
	return &NoteService{repo: repo, projects: projects}
}

func (s *NoteService) Create(ctx context.Context, in NoteCreate) (*domain.ProjectNote, error) {
	if err := validate.NoteText(in.Note); err != nil {
		return nil, err
	}

	ok, err := s.projects.Exists(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("project %d: %w", in.ProjectID, domain.ErrNotFound)
	}

	return s.repo.Insert(ctx, &domain.ProjectNote{
		ProjectID:  in.ProjectID,
		Note:       in.Note,
		ActionItem: in.ActionItem,
		Category:   in.Category,
		AuthoredBy: in.AuthoredBy,
	})
}

func (s *NoteService) Get(ctx context.Context, id int64) (*domain.ProjectNote, error) {
	return s.repo.Get(ctx, id)
}

func (s *NoteService) ListByProject(ctx context.Context, projectID int64, skip, limit int) ([]domain.ProjectNote, error) {
	return s.repo.ListByProject(ctx, projectID, skip, limit)
}

func (s *NoteService) Update(ctx context.Context, id int64, patch domain.ProjectNotePatch) (*domain.ProjectNote, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return current, nil
	}

	if patch.Note != nil {
		if err := validate.NoteText(*patch.Note); err != nil {
			return nil, err
		}
		current.Note = *patch.Note
	}
	if patch.ActionItem != nil {
		current.ActionItem = *patch.ActionItem
	}
	if patch.Category != nil {
		current.Category = *patch.Category
	}

	return s.repo.Update(ctx, current)
}

func (s *NoteService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
