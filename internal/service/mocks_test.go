package service

import (
	"context"
	"time"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/domain"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/pkg/logger"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/repository"
	"github.com/stretchr/testify/mock"
)

func testLogger() *logger.Logger {
	log, err := logger.New(&logger.Config{Level: "error", Format: "json"})
	if err != nil {
		panic(err)
	}
	return log
}

type projectRepoMock struct{ mock.Mock }

var _ repository.ProjectRepository = (*projectRepoMock)(nil)

func (m *projectRepoMock) Create(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *projectRepoMock) GetByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *projectRepoMock) Search(ctx context.Context, query string, visibility domain.Visibility) ([]*domain.Project, error) {
	args := m.Called(ctx, query, visibility)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Project), args.Error(1)
}

func (m *projectRepoMock) Stats(ctx context.Context, projectID string) (*domain.ProjectStats, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectStats), args.Error(1)
}

func (m *projectRepoMock) RecordPush(ctx context.Context, projectID string, pushedAt time.Time) error {
	return m.Called(ctx, projectID, pushedAt).Error(0)
}

type mrRepoMock struct{ mock.Mock }

var _ repository.MergeRequestRepository = (*mrRepoMock)(nil)

func (m *mrRepoMock) Create(ctx context.Context, mr *domain.MergeRequest) error {
	return m.Called(ctx, mr).Error(0)
}

func (m *mrRepoMock) GetByID(ctx context.Context, mrID string) (*domain.MergeRequest, error) {
	args := m.Called(ctx, mrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MergeRequest), args.Error(1)
}

func (m *mrRepoMock) AddReview(ctx context.Context, review *domain.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mrRepoMock) Merge(ctx context.Context, mrID string, mergedAt time.Time) error {
	return m.Called(ctx, mrID, mergedAt).Error(0)
}

func (m *mrRepoMock) ListReviews(ctx context.Context, mrID string) ([]*domain.Review, error) {
	args := m.Called(ctx, mrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

type pipelineRepoMock struct{ mock.Mock }

var _ repository.PipelineRepository = (*pipelineRepoMock)(nil)

func (m *pipelineRepoMock) Create(ctx context.Context, pipeline *domain.Pipeline) error {
	return m.Called(ctx, pipeline).Error(0)
}

func (m *pipelineRepoMock) GetByID(ctx context.Context, pipelineID string) (*domain.Pipeline, error) {
	args := m.Called(ctx, pipelineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pipeline), args.Error(1)
}

func (m *pipelineRepoMock) Update(ctx context.Context, pipelineID string, status domain.PipelineStatus, stages []string, finishedAt *time.Time, durationS *int) error {
	return m.Called(ctx, pipelineID, status, stages, finishedAt, durationS).Error(0)
}

type activityRepoMock struct{ mock.Mock }

var _ repository.ActivityRepository = (*activityRepoMock)(nil)

func (m *activityRepoMock) RecentPushes(ctx context.Context, namespace string, n int) ([]domain.PushEvent, error) {
	args := m.Called(ctx, namespace, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PushEvent), args.Error(1)
}

func (m *activityRepoMock) RecentMergeRequests(ctx context.Context, n int) ([]domain.MREvent, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MREvent), args.Error(1)
}

func (m *activityRepoMock) RecentPipelines(ctx context.Context, n int) ([]domain.PipelineEvent, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PipelineEvent), args.Error(1)
}
