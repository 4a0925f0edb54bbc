package domain

import "time"

type MergeRequest struct {
	ID           string     `json:"id"`
	ProjectID    string     `json:"project_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	SourceBranch string     `json:"source_branch"`
	TargetBranch string     `json:"target_branch"`
	Author       string     `json:"author"`
	Assignee     *string    `json:"assignee"`
	Status       MRStatus   `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	MergedAt     *time.Time `json:"merged_at"`
	Labels       []string   `json:"labels"`
	ReviewCount  int        `json:"review_count"`
}

type MRStatus string

const (
	MRStatusOpened MRStatus = "opened"
	MRStatusMerged MRStatus = "merged"
	MRStatusClosed MRStatus = "closed"
	MRStatusDraft  MRStatus = "draft"
)
