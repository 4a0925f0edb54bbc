package domain

import "time"

type Review struct {
	ID        string       `json:"id"`
	MRID      string       `json:"mr_id"`
	Reviewer  string       `json:"reviewer"`
	Action    ReviewAction `json:"action"`
	Comment   string       `json:"comment"`
	CreatedAt time.Time    `json:"created_at"`
}

type ReviewAction string

const (
	ReviewApprove        ReviewAction = "approve"
	ReviewRequestChanges ReviewAction = "request_changes"
	ReviewComment        ReviewAction = "comment"
)
