package service

import (
	"context"
	"fmt"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
	"github.com/cs-exp/tracker-backend/internal/tracking/repository"
)

// StatusEntryCreate is the payload for appending to a project's status trail.
type StatusEntryCreate struct {
	ProjectID int64
	Status    domain.ProjectStatus
	UpdatedBy string
	Comments  string
}

// StatusHistoryService keeps the append-only record of project status
// changes. The trail is written explicitly by callers; entries are never
// edited or removed.
type StatusHistoryService struct {
	repo     *repository.StatusHistoryRepository
	projects *repository.ProjectRepository
}

func NewStatusHistoryService(repo *repository.StatusHistoryRepository, projects *repository.ProjectRepository) *StatusHistoryService {
	return &StatusHistoryService{repo: repo, projects: projects}
}

// Record appends one status entry after verifying the project and status.
func (s *StatusHistoryService) Record(ctx context.Context, in StatusEntryCreate) (*domain.ProjectStatusEntry, error) {
	if _, err := domain.ParseProjectStatus(string(in.Status)); err != nil {
		return nil, err
	}

	ok, err := s.projects.Exists(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("project %d: %w", in.ProjectID, domain.ErrNotFound)
	}

	return s.repo.Insert(ctx, &domain.ProjectStatusEntry{
		ProjectID: in.ProjectID,
		Status:    in.Status,
		UpdatedBy: in.UpdatedBy,
		Comments:  in.Comments,
	})
}

// History returns a project's status trail, newest first.
func (s *StatusHistoryService) History(ctx context.Context, projectID int64, skip, limit int) ([]domain.ProjectStatusEntry, error) {
	return s.repo.ListByProject(ctx, projectID, skip, limit)
}

// Latest returns the most recent status entry for a project.
func (s *StatusHistoryService) Latest(ctx context.Context, projectID int64) (*domain.ProjectStatusEntry, error) {
	return s.repo.Latest(ctx, projectID)
}
