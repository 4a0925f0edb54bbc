package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/domain"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepo struct {
	db     *pgxpool.Pool
	logger *logger.Logger
}

func NewProjectRepo(db *pgxpool.Pool, logger *logger.Logger) *ProjectRepo {
	return &ProjectRepo{
		db:     db,
		logger: logger.Component("repository/project"),
	}
}

const projectColumns = `
    id, name, namespace, description, visibility, clone_url,
    default_branch, has_ci, topics, star_count, fork_count,
    created_at, last_pushed_at`

// Create persists a new project. A duplicate id or (namespace, name)
// pair surfaces as domain.ErrProjectExists.
func (r *ProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO projects (id, name, namespace, description, visibility, clone_url,
                              default_branch, has_ci, topics, star_count, fork_count,
                              created_at, last_pushed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `, p.ID, p.Name, p.Namespace, p.Description, p.Visibility, p.CloneURL,
		p.DefaultBranch, p.HasCI, p.Topics, p.StarCount, p.ForkCount,
		p.CreatedAt, p.LastPushedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s/%s", domain.ErrProjectExists, p.Namespace, p.Name)
		}
		return fmt.Errorf("insert project: %w", err)
	}

	return nil
}

// GetByID returns domain.ErrProjectNotFound when no row matches.
func (r *ProjectRepo) GetByID(ctx context.Context, projectID string) (*domain.Project, error) {
	row := r.db.QueryRow(ctx, `SELECT`+projectColumns+` FROM projects WHERE id = $1`, projectID)

	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("query project: %w", err)
	}

	return p, nil
}

// Search matches the query case-insensitively against name OR
// description. No ordering is applied beyond insertion order.
func (r *ProjectRepo) Search(ctx context.Context, query string, visibility domain.Visibility) ([]*domain.Project, error) {
	pattern := "%" + query + "%"

	var (
		rows pgx.Rows
		err  error
	)
	if visibility != "" {
		rows, err = r.db.Query(ctx, `
            SELECT`+projectColumns+`
            FROM projects
            WHERE (name ILIKE $1 OR description ILIKE $1) AND visibility = $2
        `, pattern, visibility)
	} else {
		rows, err = r.db.Query(ctx, `
            SELECT`+projectColumns+`
            FROM projects
            WHERE name ILIKE $1 OR description ILIKE $1
        `, pattern)
	}
	if err != nil {
		return nil, fmt.Errorf("search projects: %w", err)
	}
	defer rows.Close()

	projects := []*domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return projects, nil
}

// Stats counts merge requests and pipelines for the project. PassRate
// is left empty for the service to format.
func (r *ProjectRepo) Stats(ctx context.Context, projectID string) (*domain.ProjectStats, error) {
	stats := &domain.ProjectStats{ProjectID: projectID}

	err := r.db.QueryRow(ctx, `
        SELECT
            (SELECT COUNT(*) FROM merge_requests WHERE project_id = $1),
            (SELECT COUNT(*) FROM pipelines WHERE project_id = $1),
            (SELECT COUNT(*) FROM pipelines WHERE project_id = $1 AND status = $2)
    `, projectID, domain.PipelinePassed).Scan(&stats.MergeRequests, &stats.Pipelines, &stats.PassedPipelines)
	if err != nil {
		return nil, fmt.Errorf("query project stats: %w", err)
	}

	return stats, nil
}

// RecordPush stamps last_pushed_at, feeding the activity query.
func (r *ProjectRepo) RecordPush(ctx context.Context, projectID string, pushedAt time.Time) error {
	result, err := r.db.Exec(ctx, `
        UPDATE projects SET last_pushed_at = $1 WHERE id = $2
    `, pushedAt, projectID)
	if err != nil {
		return fmt.Errorf("record push: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}

	return nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	p := &domain.Project{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Namespace, &p.Description, &p.Visibility,
		&p.CloneURL, &p.DefaultBranch, &p.HasCI, &p.Topics,
		&p.StarCount, &p.ForkCount, &p.CreatedAt, &p.LastPushedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Topics == nil {
		p.Topics = []string{}
	}
	return p, nil
}
