package service

import (
	"context"
	"testing"
	"time"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateMRDerivesIDAndDefaults(t *testing.T) {
	ctx := context.Background()
	repo := &mrRepoMock{}
	svc := NewMergeRequestService(repo, testLogger())

	repo.On("Create", ctx, mock.MatchedBy(func(mr *domain.MergeRequest) bool {
		return mr.ID == "96d5f3c9" &&
			mr.Status == domain.MRStatusOpened &&
			mr.ReviewCount == 0 &&
			mr.Assignee == nil &&
			mr.SourceBranch == "feat" &&
			mr.TargetBranch == "main"
	})).Return(nil)

	mr, err := svc.CreateMR(ctx, "685c5fbf", "add feature", "feat", "main", "alice", "")
	require.NoError(t, err)
	require.Equal(t, "96d5f3c9", mr.ID)
	require.Equal(t, domain.MRStatusOpened, mr.Status)
	require.Equal(t, "alice", mr.Author)
	repo.AssertExpectations(t)
}

func TestCreateMRBranchDefaults(t *testing.T) {
	ctx := context.Background()
	repo := &mrRepoMock{}
	svc := NewMergeRequestService(repo, testLogger())

	repo.On("Create", ctx, mock.MatchedBy(func(mr *domain.MergeRequest) bool {
		return mr.SourceBranch == "feature" && mr.TargetBranch == "main"
	})).Return(nil)

	_, err := svc.CreateMR(ctx, "685c5fbf", "add feature", "", "", "alice", "")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestReviewMRDerivesReviewID(t *testing.T) {
	ctx := context.Background()
	repo := &mrRepoMock{}
	svc := NewMergeRequestService(repo, testLogger())

	repo.On("AddReview", ctx, mock.MatchedBy(func(rv *domain.Review) bool {
		return rv.ID == "d3164ffd" &&
			rv.MRID == "96d5f3c9" &&
			rv.Reviewer == "bob" &&
			rv.Action == domain.ReviewApprove
	})).Return(nil)

	review, err := svc.ReviewMR(ctx, "96d5f3c9", "bob", domain.ReviewApprove, "lgtm")
	require.NoError(t, err)
	require.Equal(t, "d3164ffd", review.ID)
	repo.AssertExpectations(t)
}

func TestReviewMRRejectsUnknownAction(t *testing.T) {
	ctx := context.Background()
	repo := &mrRepoMock{}
	svc := NewMergeRequestService(repo, testLogger())

	_, err := svc.ReviewMR(ctx, "96d5f3c9", "bob", "ship_it", "")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	repo.AssertNotCalled(t, "AddReview", mock.Anything, mock.Anything)
}

func TestReviewMRDuplicateReviewerSurfaces(t *testing.T) {
	ctx := context.Background()
	repo := &mrRepoMock{}
	svc := NewMergeRequestService(repo, testLogger())

	repo.On("AddReview", ctx, mock.Anything).Return(domain.ErrReviewExists)

	_, err := svc.ReviewMR(ctx, "96d5f3c9", "bob", domain.ReviewApprove, "")
	require.ErrorIs(t, err, domain.ErrReviewExists)
}

func TestMergeMRReturnsReloadedRecord(t *testing.T) {
	ctx := context.Background()
	repo := &mrRepoMock{}
	svc := NewMergeRequestService(repo, testLogger())

	created := time.Now().Add(-time.Hour)
	mergedAt := time.Now()
	repo.On("Merge", ctx, "96d5f3c9", mock.MatchedBy(func(at time.Time) bool {
		return !at.Before(created)
	})).Return(nil)
	repo.On("GetByID", ctx, "96d5f3c9").Return(&domain.MergeRequest{
		ID:          "96d5f3c9",
		Status:      domain.MRStatusMerged,
		Author:      "alice",
		CreatedAt:   created,
		MergedAt:    &mergedAt,
		ReviewCount: 1,
	}, nil)

	mr, err := svc.MergeMR(ctx, "96d5f3c9", "alice", false)
	require.NoError(t, err)
	require.Equal(t, domain.MRStatusMerged, mr.Status)
	require.NotNil(t, mr.MergedAt)
	require.False(t, mr.MergedAt.Before(mr.CreatedAt))
	repo.AssertExpectations(t)
}

func TestMergeMRNotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mrRepoMock{}
	svc := NewMergeRequestService(repo, testLogger())

	repo.On("Merge", ctx, "deadbeef", mock.Anything).Return(domain.ErrMRNotFound)

	_, err := svc.MergeMR(ctx, "deadbeef", "alice", false)
	require.ErrorIs(t, err, domain.ErrMRNotFound)
}
