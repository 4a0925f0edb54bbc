package repository

import (
	"context"
	"fmt"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/domain"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivityRepo struct {
	db     *pgxpool.Pool
	logger *logger.Logger
}

func NewActivityRepo(db *pgxpool.Pool, logger *logger.Logger) *ActivityRepo {
	return &ActivityRepo{
		db:     db,
		logger: logger.Component("repository/activity"),
	}
}

// RecentPushes returns projects ordered by last push, most recent
// first. Projects that were never pushed sort last.
func (r *ActivityRepo) RecentPushes(ctx context.Context, namespace string, n int) ([]domain.PushEvent, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if namespace != "" {
		rows, err = r.db.Query(ctx, `
            SELECT id, last_pushed_at
            FROM projects
            WHERE namespace = $1
            ORDER BY last_pushed_at DESC NULLS LAST
            LIMIT $2
        `, namespace, n)
	} else {
		rows, err = r.db.Query(ctx, `
            SELECT id, last_pushed_at
            FROM projects
            ORDER BY last_pushed_at DESC NULLS LAST
            LIMIT $1
        `, n)
	}
	if err != nil {
		return nil, fmt.Errorf("query recent pushes: %w", err)
	}
	defer rows.Close()

	pushes := []domain.PushEvent{}
	for rows.Next() {
		var p domain.PushEvent
		if err := rows.Scan(&p.ProjectID, &p.Timestamp); err != nil {
			return nil, fmt.Errorf("scan push event: %w", err)
		}
		pushes = append(pushes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pushes: %w", err)
	}

	return pushes, nil
}

// RecentMergeRequests is global: the feed never scopes MRs to a
// namespace.
func (r *ActivityRepo) RecentMergeRequests(ctx context.Context, n int) ([]domain.MREvent, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, title, created_at
        FROM merge_requests
        ORDER BY created_at DESC
        LIMIT $1
    `, n)
	if err != nil {
		return nil, fmt.Errorf("query recent mrs: %w", err)
	}
	defer rows.Close()

	mrs := []domain.MREvent{}
	for rows.Next() {
		var m domain.MREvent
		if err := rows.Scan(&m.ID, &m.Title, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan mr event: %w", err)
		}
		mrs = append(mrs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mrs: %w", err)
	}

	return mrs, nil
}

func (r *ActivityRepo) RecentPipelines(ctx context.Context, n int) ([]domain.PipelineEvent, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, status, started_at
        FROM pipelines
        ORDER BY started_at DESC
        LIMIT $1
    `, n)
	if err != nil {
		return nil, fmt.Errorf("query recent pipelines: %w", err)
	}
	defer rows.Close()

	pipelines := []domain.PipelineEvent{}
	for rows.Next() {
		var p domain.PipelineEvent
		if err := rows.Scan(&p.ID, &p.Status, &p.StartedAt); err != nil {
			return nil, fmt.Errorf("scan pipeline event: %w", err)
		}
		pipelines = append(pipelines, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pipelines: %w", err)
	}

	return pipelines, nil
}
