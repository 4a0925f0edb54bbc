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

type MergeRequestRepo struct {
	db     *pgxpool.Pool
	logger *logger.Logger
}

func NewMergeRequestRepo(db *pgxpool.Pool, logger *logger.Logger) *MergeRequestRepo {
	return &MergeRequestRepo{
		db:     db,
		logger: logger.Component("repository/mergerequest"),
	}
}

const mrColumns = `
    id, project_id, title, description, source_branch, target_branch,
    author, assignee, status, created_at, merged_at, labels, review_count`

// Create persists a new merge request. A missing project surfaces as
// domain.ErrProjectNotFound via the foreign key, a duplicate derived id
// as domain.ErrMRExists.
func (r *MergeRequestRepo) Create(ctx context.Context, mr *domain.MergeRequest) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO merge_requests (id, project_id, title, description, source_branch,
                                    target_branch, author, assignee, status, created_at,
                                    merged_at, labels, review_count)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `, mr.ID, mr.ProjectID, mr.Title, mr.Description, mr.SourceBranch,
		mr.TargetBranch, mr.Author, mr.Assignee, mr.Status, mr.CreatedAt,
		mr.MergedAt, mr.Labels, mr.ReviewCount)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrMRExists, mr.ID)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrProjectNotFound, mr.ProjectID)
		}
		return fmt.Errorf("insert merge request: %w", err)
	}

	return nil
}

// GetByID returns domain.ErrMRNotFound when no row matches.
func (r *MergeRequestRepo) GetByID(ctx context.Context, mrID string) (*domain.MergeRequest, error) {
	row := r.db.QueryRow(ctx, `SELECT`+mrColumns+` FROM merge_requests WHERE id = $1`, mrID)

	mr, err := scanMergeRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMRNotFound
		}
		return nil, fmt.Errorf("query merge request: %w", err)
	}

	return mr, nil
}

// AddReview inserts the review and increments the parent's
// review_count inside one transaction, so the counter cannot drift
// from the reviews table.
func (r *MergeRequestRepo) AddReview(ctx context.Context, review *domain.Review) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
            INSERT INTO reviews (id, mr_id, reviewer, action, comment, created_at)
            VALUES ($1, $2, $3, $4, $5, $6)
        `, review.ID, review.MRID, review.Reviewer, review.Action, review.Comment, review.CreatedAt)

		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s on %s", domain.ErrReviewExists, review.Reviewer, review.MRID)
			}
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: %s", domain.ErrMRNotFound, review.MRID)
			}
			return fmt.Errorf("insert review: %w", err)
		}

		result, err := tx.Exec(ctx, `
            UPDATE merge_requests SET review_count = review_count + 1 WHERE id = $1
        `, review.MRID)
		if err != nil {
			return fmt.Errorf("increment review count: %w", err)
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s", domain.ErrMRNotFound, review.MRID)
		}

		return nil
	})
}

// Merge sets status and merged_at unconditionally: re-merging an
// already merged or closed MR is accepted.
func (r *MergeRequestRepo) Merge(ctx context.Context, mrID string, mergedAt time.Time) error {
	result, err := r.db.Exec(ctx, `
        UPDATE merge_requests SET status = $1, merged_at = $2 WHERE id = $3
    `, domain.MRStatusMerged, mergedAt, mrID)
	if err != nil {
		return fmt.Errorf("merge mr: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrMRNotFound, mrID)
	}

	return nil
}

func (r *MergeRequestRepo) ListReviews(ctx context.Context, mrID string) ([]*domain.Review, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, mr_id, reviewer, action, comment, created_at
        FROM reviews
        WHERE mr_id = $1
        ORDER BY created_at
    `, mrID)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*domain.Review{}
	for rows.Next() {
		review := &domain.Review{}
		if err := rows.Scan(&review.ID, &review.MRID, &review.Reviewer,
			&review.Action, &review.Comment, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}

	return reviews, nil
}

func scanMergeRequest(row pgx.Row) (*domain.MergeRequest, error) {
	mr := &domain.MergeRequest{}
	err := row.Scan(
		&mr.ID, &mr.ProjectID, &mr.Title, &mr.Description, &mr.SourceBranch,
		&mr.TargetBranch, &mr.Author, &mr.Assignee, &mr.Status,
		&mr.CreatedAt, &mr.MergedAt, &mr.Labels, &mr.ReviewCount,
	)
	if err != nil {
		return nil, err
	}
	if mr.Labels == nil {
		mr.Labels = []string{}
	}
	return mr, nil
}

// withTx executes a function within a database transaction.
// Automatically handles commit/rollback based on error status.
func (r *MergeRequestRepo) withTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				r.logger.Error("failed to rollback transaction",
					"error", rbErr,
					"original_error", err,
				)
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
