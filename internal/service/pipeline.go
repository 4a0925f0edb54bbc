package service

import (
	"context"
	"fmt"
	"time"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/domain"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/pkg/logger"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/repository"
	validation "github.com/go-ozzo/ozzo-validation"
)

type PipelineService struct {
	pipelineRepo repository.PipelineRepository
	logger       *logger.Logger
}

func NewPipelineService(pipelineRepo repository.PipelineRepository, logger *logger.Logger) *PipelineService {
	return &PipelineService{
		pipelineRepo: pipelineRepo,
		logger:       logger.Component("service/pipeline"),
	}
}

// CreatePipeline starts a pending run. The id derives from
// project_id/sha, so re-running the same commit collides.
func (s *PipelineService) CreatePipeline(ctx context.Context, projectID, ref, sha, triggeredBy string) (*domain.Pipeline, error) {
	if triggeredBy == "" {
		triggeredBy = "push"
	}

	pipeline := &domain.Pipeline{
		ID:          domain.PipelineID(projectID, sha),
		ProjectID:   projectID,
		Ref:         ref,
		SHA:         sha,
		Status:      domain.PipelinePending,
		Stages:      []string{},
		StartedAt:   time.Now(),
		TriggeredBy: triggeredBy,
	}

	if err := s.pipelineRepo.Create(ctx, pipeline); err != nil {
		return nil, fmt.Errorf("create pipeline: %w", err)
	}

	s.logger.Info("pipeline created",
		"pipeline_id", pipeline.ID,
		"project_id", projectID,
		"ref", ref,
		"sha", sha,
	)

	return pipeline, nil
}

func (s *PipelineService) GetPipeline(ctx context.Context, pipelineID string) (*domain.Pipeline, error) {
	pipeline, err := s.pipelineRepo.GetByID(ctx, pipelineID)
	if err != nil {
		return nil, fmt.Errorf("get pipeline: %w", err)
	}
	return pipeline, nil
}

// UpdatePipeline overwrites status and stages without transition
// validation. finished_at is stamped only when the new status is
// terminal; any move back to a non-terminal status clears it, wiping
// the previous completion time.
func (s *PipelineService) UpdatePipeline(ctx context.Context, pipelineID string, status domain.PipelineStatus, stages []string, durationS *int) error {
	if err := validation.Validate(string(status),
		validation.Required,
		validation.In(
			string(domain.PipelinePending),
			string(domain.PipelineRunning),
			string(domain.PipelinePassed),
			string(domain.PipelineFailed),
			string(domain.PipelineCancelled),
		),
	); err != nil {
		return fmt.Errorf("%w: pipeline status %q", domain.ErrInvalidArgument, status)
	}

	finishedAt := finishedAtFor(status)

	if err := s.pipelineRepo.Update(ctx, pipelineID, status, stages, finishedAt, durationS); err != nil {
		return fmt.Errorf("update pipeline: %w", err)
	}

	s.logger.Info("pipeline updated",
		"pipeline_id", pipelineID,
		"status", status,
		"stages", len(stages),
	)

	return nil
}

func finishedAtFor(status domain.PipelineStatus) *time.Time {
	if !status.IsTerminal() {
		return nil
	}
	now := time.Now()
	return &now
}
