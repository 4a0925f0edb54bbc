package service

import (
	"context"
	"testing"
	"time"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestFeedUsesDefaultLimit(t *testing.T) {
	ctx := context.Background()
	repo := &activityRepoMock{}
	svc := NewActivityService(repo, 20, testLogger())

	now := time.Now()
	repo.On("RecentPushes", ctx, "", 20).Return([]domain.PushEvent{
		{ProjectID: "685c5fbf", Timestamp: &now},
	}, nil)
	repo.On("RecentMergeRequests", ctx, 20).Return([]domain.MREvent{
		{ID: "96d5f3c9", Title: "add feature", CreatedAt: now},
	}, nil)
	repo.On("RecentPipelines", ctx, 20).Return([]domain.PipelineEvent{
		{ID: "253559e5", Status: domain.PipelinePassed, StartedAt: now},
	}, nil)

	feed, err := svc.Feed(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, feed.RecentPushes, 1)
	require.Len(t, feed.RecentMRs, 1)
	require.Len(t, feed.RecentPipelines, 1)
	repo.AssertExpectations(t)
}

func TestFeedScopesPushesToNamespaceOnly(t *testing.T) {
	ctx := context.Background()
	repo := &activityRepoMock{}
	svc := NewActivityService(repo, 20, testLogger())

	// namespace narrows pushes; mrs and pipelines stay global
	repo.On("RecentPushes", ctx, "acme", 5).Return([]domain.PushEvent{}, nil)
	repo.On("RecentMergeRequests", ctx, 5).Return([]domain.MREvent{}, nil)
	repo.On("RecentPipelines", ctx, 5).Return([]domain.PipelineEvent{}, nil)

	feed, err := svc.Feed(ctx, "acme", 5)
	require.NoError(t, err)
	require.Empty(t, feed.RecentPushes)
	repo.AssertExpectations(t)
}
