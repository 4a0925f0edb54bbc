package domain

import "time"

type Project struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Namespace     string     `json:"namespace"`
	Description   string     `json:"description"`
	Visibility    Visibility `json:"visibility"`
	CloneURL      string     `json:"clone_url"`
	DefaultBranch string     `json:"default_branch"`
	HasCI         bool       `json:"has_ci"`
	Topics        []string   `json:"topics"`
	StarCount     int        `json:"star_count"`
	ForkCount     int        `json:"fork_count"`
	CreatedAt     time.Time  `json:"created_at"`
	LastPushedAt  *time.Time `json:"last_pushed_at"`
}

type Visibility string

const (
	VisibilityPrivate  Visibility = "private"
	VisibilityPublic   Visibility = "public"
	VisibilityInternal Visibility = "internal"
)

// ProjectStats is the aggregate view returned by the stats query.
// PassRate is pre-formatted to one decimal place, e.g. "33.3%".
type ProjectStats struct {
	ProjectID       string `json:"project_id"`
	MergeRequests   int64  `json:"merge_requests"`
	Pipelines       int64  `json:"pipelines"`
	PassedPipelines int64  `json:"passed_pipelines"`
	PassRate        string `json:"pass_rate"`
}
