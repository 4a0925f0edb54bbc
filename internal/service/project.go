package service

import (
	"context"
	"fmt"
	"time"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/domain"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/pkg/logger"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/repository"
)

type ProjectService struct {
	projectRepo repository.ProjectRepository
	logger      *logger.Logger
	cloneHost   string
}

func NewProjectService(projectRepo repository.ProjectRepository, cloneHost string, logger *logger.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		logger:      logger.Component("service/project"),
		cloneHost:   cloneHost,
	}
}

// CreateProject derives the project id from namespace/name and
// synthesizes the clone URL from the configured host. Empty visibility
// and default branch fall back to "private" and "main".
func (s *ProjectService) CreateProject(ctx context.Context, namespace, name, description string, visibility domain.Visibility, defaultBranch string) (*domain.Project, error) {
	if visibility == "" {
		visibility = domain.VisibilityPrivate
	}
	if defaultBranch == "" {
		defaultBranch = "main"
	}

	project := &domain.Project{
		ID:            domain.ProjectID(namespace, name),
		Name:          name,
		Namespace:     namespace,
		Description:   description,
		Visibility:    visibility,
		CloneURL:      fmt.Sprintf("git@%s:%s/%s.git", s.cloneHost, namespace, name),
		DefaultBranch: defaultBranch,
		Topics:        []string{},
		CreatedAt:     time.Now(),
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.logger.Info("project created",
		"project_id", project.ID,
		"namespace", namespace,
		"name", name,
		"visibility", visibility,
	)

	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) SearchProjects(ctx context.Context, query string, visibility domain.Visibility) ([]*domain.Project, error) {
	projects, err := s.projectRepo.Search(ctx, query, visibility)
	if err != nil {
		return nil, fmt.Errorf("search projects: %w", err)
	}

	s.logger.Info("projects searched",
		"query", query,
		"visibility", visibility,
		"count", len(projects),
	)

	return projects, nil
}

// ProjectStats formats the pass rate to one decimal place. Zero
// pipelines yields "0.0%" rather than a division by zero.
func (s *ProjectService) ProjectStats(ctx context.Context, projectID string) (*domain.ProjectStats, error) {
	stats, err := s.projectRepo.Stats(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project stats: %w", err)
	}

	rate := 0.0
	if stats.Pipelines > 0 {
		rate = float64(stats.PassedPipelines) / float64(stats.Pipelines) * 100
	}
	stats.PassRate = fmt.Sprintf("%.1f%%", rate)

	return stats, nil
}

// RecordPush stamps the project's last_pushed_at with the current time.
func (s *ProjectService) RecordPush(ctx context.Context, projectID string) error {
	if err := s.projectRepo.RecordPush(ctx, projectID, time.Now()); err != nil {
		return fmt.Errorf("record push: %w", err)
	}

	s.logger.Info("push recorded", "project_id", projectID)
	return nil
}
