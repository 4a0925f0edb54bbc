package service

import (
	"context"
	"testing"
	"time"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePipelineStartsPending(t *testing.T) {
	ctx := context.Background()
	repo := &pipelineRepoMock{}
	svc := NewPipelineService(repo, testLogger())

	repo.On("Create", ctx, mock.MatchedBy(func(p *domain.Pipeline) bool {
		return p.ID == "253559e5" &&
			p.Status == domain.PipelinePending &&
			len(p.Stages) == 0 &&
			p.FinishedAt == nil &&
			p.TriggeredBy == "push"
	})).Return(nil)

	pipeline, err := svc.CreatePipeline(ctx, "685c5fbf", "main", "abc123", "")
	require.NoError(t, err)
	require.Equal(t, "253559e5", pipeline.ID)
	require.NotZero(t, pipeline.StartedAt)
	repo.AssertExpectations(t)
}

func TestUpdatePipelineTerminalSetsFinishedAt(t *testing.T) {
	ctx := context.Background()
	repo := &pipelineRepoMock{}
	svc := NewPipelineService(repo, testLogger())

	stages := []string{"build", "test"}
	duration := 42
	repo.On("Update", ctx, "253559e5", domain.PipelinePassed, stages,
		mock.MatchedBy(func(at *time.Time) bool { return at != nil }),
		&duration,
	).Return(nil)

	err := svc.UpdatePipeline(ctx, "253559e5", domain.PipelinePassed, stages, &duration)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdatePipelineNonTerminalClearsFinishedAt(t *testing.T) {
	ctx := context.Background()
	repo := &pipelineRepoMock{}
	svc := NewPipelineService(repo, testLogger())

	repo.On("Update", ctx, "253559e5", domain.PipelineRunning, []string{"build"},
		(*time.Time)(nil), (*int)(nil),
	).Return(nil)

	err := svc.UpdatePipeline(ctx, "253559e5", domain.PipelineRunning, []string{"build"}, nil)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdatePipelineRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	repo := &pipelineRepoMock{}
	svc := NewPipelineService(repo, testLogger())

	err := svc.UpdatePipeline(ctx, "253559e5", "exploded", nil, nil)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	repo.AssertNotCalled(t, "Update",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePipelineNotFound(t *testing.T) {
	ctx := context.Background()
	repo := &pipelineRepoMock{}
	svc := NewPipelineService(repo, testLogger())

	repo.On("Update", ctx, "deadbeef", domain.PipelineFailed, mock.Anything,
		mock.Anything, mock.Anything).Return(domain.ErrPipelineNotFound)

	err := svc.UpdatePipeline(ctx, "deadbeef", domain.PipelineFailed, nil, nil)
	require.ErrorIs(t, err, domain.ErrPipelineNotFound)
}
