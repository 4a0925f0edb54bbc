package repository

import (
	"context"
	"time"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/domain"
)

// ProjectRepository persists project records and answers project reads.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, projectID string) (*domain.Project, error)
	// Search matches the query as a substring of name or description.
	// An empty visibility disables the visibility filter.
	Search(ctx context.Context, query string, visibility domain.Visibility) ([]*domain.Project, error)
	// Stats returns raw counts; pass-rate formatting happens in the service.
	Stats(ctx context.Context, projectID string) (*domain.ProjectStats, error)
	RecordPush(ctx context.Context, projectID string, pushedAt time.Time) error
}

// MergeRequestRepository persists merge requests and their reviews.
type MergeRequestRepository interface {
	Create(ctx context.Context, mr *domain.MergeRequest) error
	GetByID(ctx context.Context, mrID string) (*domain.MergeRequest, error)
	// AddReview inserts the review and increments the parent's
	// review_count in a single transaction.
	AddReview(ctx context.Context, review *domain.Review) error
	Merge(ctx context.Context, mrID string, mergedAt time.Time) error
	ListReviews(ctx context.Context, mrID string) ([]*domain.Review, error)
}

// PipelineRepository persists CI pipeline runs.
type PipelineRepository interface {
	Create(ctx context.Context, pipeline *domain.Pipeline) error
	GetByID(ctx context.Context, pipelineID string) (*domain.Pipeline, error)
	// Update overwrites status and stages unconditionally. A nil
	// finishedAt clears the column.
	Update(ctx context.Context, pipelineID string, status domain.PipelineStatus, stages []string, finishedAt *time.Time, durationS *int) error
}

// ActivityRepository answers the bounded recent-activity queries.
type ActivityRepository interface {
	// RecentPushes is namespace-scoped when namespace is non-empty.
	RecentPushes(ctx context.Context, namespace string, n int) ([]domain.PushEvent, error)
	RecentMergeRequests(ctx context.Context, n int) ([]domain.MREvent, error)
	RecentPipelines(ctx context.Context, n int) ([]domain.PipelineEvent, error)
}
