package domain

import "time"

type Pipeline struct {
	ID          string         `json:"id"`
	ProjectID   string         `json:"project_id"`
	Ref         string         `json:"ref"`
	SHA         string         `json:"sha"`
	Status      PipelineStatus `json:"status"`
	Stages      []string       `json:"stages"`
	StartedAt   time.Time      `json:"started_at"`
	FinishedAt  *time.Time     `json:"finished_at"`
	DurationS   *int           `json:"duration_s"`
	TriggeredBy string         `json:"triggered_by"`
}

type PipelineStatus string

const (
	PipelinePending   PipelineStatus = "pending"
	PipelineRunning   PipelineStatus = "running"
	PipelinePassed    PipelineStatus = "passed"
	PipelineFailed    PipelineStatus = "failed"
	PipelineCancelled PipelineStatus = "cancelled"
)

// IsTerminal reports whether the status ends a pipeline run.
// finished_at is set exactly when the pipeline enters a terminal
// status and cleared otherwise.
func (s PipelineStatus) IsTerminal() bool {
	switch s {
	case PipelinePassed, PipelineFailed, PipelineCancelled:
		return true
	}
	return false
}
