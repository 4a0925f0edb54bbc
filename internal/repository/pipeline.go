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

type PipelineRepo struct {
	db     *pgxpool.Pool
	logger *logger.Logger
}

func NewPipelineRepo(db *pgxpool.Pool, logger *logger.Logger) *PipelineRepo {
	return &PipelineRepo{
		db:     db,
		logger: logger.Component("repository/pipeline"),
	}
}

const pipelineColumns = `
    id, project_id, ref, sha, status, stages,
    started_at, finished_at, duration_s, triggered_by`

// Create persists a new pipeline run. A re-run of the same
// project+commit derives the same id and surfaces as
// domain.ErrPipelineExists.
func (r *PipelineRepo) Create(ctx context.Context, p *domain.Pipeline) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO pipelines (id, project_id, ref, sha, status, stages,
                               started_at, finished_at, duration_s, triggered_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, p.ID, p.ProjectID, p.Ref, p.SHA, p.Status, p.Stages,
		p.StartedAt, p.FinishedAt, p.DurationS, p.TriggeredBy)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrPipelineExists, p.ID)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrProjectNotFound, p.ProjectID)
		}
		return fmt.Errorf("insert pipeline: %w", err)
	}

	return nil
}

// GetByID returns domain.ErrPipelineNotFound when no row matches.
func (r *PipelineRepo) GetByID(ctx context.Context, pipelineID string) (*domain.Pipeline, error) {
	row := r.db.QueryRow(ctx, `SELECT`+pipelineColumns+` FROM pipelines WHERE id = $1`, pipelineID)

	p := &domain.Pipeline{}
	err := row.Scan(
		&p.ID, &p.ProjectID, &p.Ref, &p.SHA, &p.Status, &p.Stages,
		&p.StartedAt, &p.FinishedAt, &p.DurationS, &p.TriggeredBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPipelineNotFound
		}
		return nil, fmt.Errorf("query pipeline: %w", err)
	}
	if p.Stages == nil {
		p.Stages = []string{}
	}

	return p, nil
}

// Update overwrites status, stages, finished_at and duration_s in one
// statement. No transition validation: the caller decides which
// statuses are legal, and finished_at is cleared whenever the new
// status is non-terminal.
func (r *PipelineRepo) Update(ctx context.Context, pipelineID string, status domain.PipelineStatus, stages []string, finishedAt *time.Time, durationS *int) error {
	if stages == nil {
		stages = []string{}
	}

	result, err := r.db.Exec(ctx, `
        UPDATE pipelines
        SET status = $1, stages = $2, finished_at = $3, duration_s = $4
        WHERE id = $5
    `, status, stages, finishedAt, durationS, pipelineID)
	if err != nil {
		return fmt.Errorf("update pipeline: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPipelineNotFound, pipelineID)
	}

	return nil
}
