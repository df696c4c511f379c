package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/szabadkai/quarterback/internal/domain"
	"github.com/szabadkai/quarterback/internal/estimate"
	"github.com/szabadkai/quarterback/internal/repository"
)

// ProjectServiceImpl implements ProjectService. ICE score and story points
// are derived values: they are recomputed on every write so the stored row
// never disagrees with its inputs.
type ProjectServiceImpl struct {
	projects repository.ProjectRepo
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(projects repository.ProjectRepo) *ProjectServiceImpl {
	return &ProjectServiceImpl{projects: projects}
}

func (s *ProjectServiceImpl) Create(ctx context.Context, input ProjectInput) (*domain.Project, error) {
	if err := normalizeProjectInput(&input); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyProjectInput(p, input)
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectServiceImpl) Update(ctx context.Context, id string, input ProjectInput) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := normalizeProjectInput(&input); err != nil {
		return nil, err
	}
	applyProjectInput(p, input)
	p.UpdatedAt = time.Now().UTC()
	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectServiceImpl) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *ProjectServiceImpl) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *ProjectServiceImpl) ListBacklog(ctx context.Context) ([]*domain.Project, error) {
	all, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	var backlog []*domain.Project
	for _, p := range all {
		if p.InBacklog() {
			backlog = append(backlog, p)
		}
	}
	return backlog, nil
}

func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}

func (s *ProjectServiceImpl) Unschedule(ctx context.Context, id string) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Unschedule(time.Now().UTC())
	return s.projects.Update(ctx, p)
}

func (s *ProjectServiceImpl) ResetBoard(ctx context.Context) error {
	return s.projects.UnscheduleAll(ctx)
}

func normalizeProjectInput(input *ProjectInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if input.Type == "" {
		input.Type = domain.DefaultProjectType
	}
	if input.Status == "" {
		input.Status = string(domain.ProjectPlanned)
	}
	if !domain.ValidProjectStatuses[input.Status] {
		return fmt.Errorf("invalid project status %q", input.Status)
	}
	return nil
}

func applyProjectInput(p *domain.Project, input ProjectInput) {
	p.Name = input.Name
	p.Type = input.Type
	p.Status = domain.ProjectStatus(input.Status)
	p.ICEImpact = estimate.ClampICE(input.ICEImpact)
	p.ICEConfidence = estimate.ClampICE(input.ICEConfidence)
	p.ICEEffort = estimate.ClampICE(input.ICEEffort)
	p.ICEScore = estimate.ICEScore(p.ICEImpact, p.ICEConfidence, p.ICEEffort)
	p.StoryPoints = estimate.StoryPoints(p.ICEEffort, p.ICEConfidence, input.StoryPoints)
	p.MandayEstimate = estimate.NormalizeMandays(input.MandayEstimate)
}
