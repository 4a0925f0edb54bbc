package domain

import "time"

// ActivityFeed aggregates the three most-recent views: pushes, merge
// requests and pipelines. Pushes can be scoped to a namespace; the
// other two sections are always global.
type ActivityFeed struct {
	RecentPushes    []PushEvent     `json:"recent_pushes"`
	RecentMRs       []MREvent       `json:"recent_mrs"`
	RecentPipelines []PipelineEvent `json:"recent_pipelines"`
}

type PushEvent struct {
	ProjectID string     `json:"project_id"`
	Timestamp *time.Time `json:"timestamp"`
}

type MREvent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type PipelineEvent struct {
	ID        string         `json:"id"`
	Status    PipelineStatus `json:"status"`
	StartedAt time.Time      `json:"started_at"`
}
