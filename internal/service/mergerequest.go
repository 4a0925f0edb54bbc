package service

import (
	"context"
	"fmt"
	"time"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/domain"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/pkg/logger"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/repository"
	validation "github.com/go-ozzo/ozzo-validation"
)

type MergeRequestService struct {
	mrRepo repository.MergeRequestRepository
	logger *logger.Logger
}

func NewMergeRequestService(mrRepo repository.MergeRequestRepository, logger *logger.Logger) *MergeRequestService {
	return &MergeRequestService{
		mrRepo: mrRepo,
		logger: logger.Component("service/mergerequest"),
	}
}

// CreateMR derives the id from project_id/title and opens the merge
// request with no assignee and a zero review count.
func (s *MergeRequestService) CreateMR(ctx context.Context, projectID, title, sourceBranch, targetBranch, author, description string) (*domain.MergeRequest, error) {
	if sourceBranch == "" {
		sourceBranch = "feature"
	}
	if targetBranch == "" {
		targetBranch = "main"
	}

	mr := &domain.MergeRequest{
		ID:           domain.MergeRequestID(projectID, title),
		ProjectID:    projectID,
		Title:        title,
		Description:  description,
		SourceBranch: sourceBranch,
		TargetBranch: targetBranch,
		Author:       author,
		Status:       domain.MRStatusOpened,
		CreatedAt:    time.Now(),
		Labels:       []string{},
	}

	if err := s.mrRepo.Create(ctx, mr); err != nil {
		return nil, fmt.Errorf("create mr: %w", err)
	}

	s.logger.Info("merge request created",
		"mr_id", mr.ID,
		"project_id", projectID,
		"author", author,
	)

	return mr, nil
}

func (s *MergeRequestService) GetMR(ctx context.Context, mrID string) (*domain.MergeRequest, error) {
	mr, err := s.mrRepo.GetByID(ctx, mrID)
	if err != nil {
		return nil, fmt.Errorf("get mr: %w", err)
	}
	return mr, nil
}

// ReviewMR records a review and bumps the parent's review_count by
// exactly one. A second review by the same reviewer derives the same
// id and is rejected.
func (s *MergeRequestService) ReviewMR(ctx context.Context, mrID, reviewer string, action domain.ReviewAction, comment string) (*domain.Review, error) {
	if err := validation.Validate(string(action),
		validation.Required,
		validation.In(
			string(domain.ReviewApprove),
			string(domain.ReviewRequestChanges),
			string(domain.ReviewComment),
		),
	); err != nil {
		return nil, fmt.Errorf("%w: review action %q", domain.ErrInvalidArgument, action)
	}

	review := &domain.Review{
		ID:        domain.ReviewID(mrID, reviewer),
		MRID:      mrID,
		Reviewer:  reviewer,
		Action:    action,
		Comment:   comment,
		CreatedAt: time.Now(),
	}

	if err := s.mrRepo.AddReview(ctx, review); err != nil {
		return nil, fmt.Errorf("review mr: %w", err)
	}

	s.logger.Info("review added",
		"review_id", review.ID,
		"mr_id", mrID,
		"reviewer", reviewer,
		"action", action,
	)

	return review, nil
}

// MergeMR merges unconditionally: no check that the MR is currently
// opened or draft. mergedBy and squash are accepted and logged but not
// persisted; the schema has no columns for them.
func (s *MergeRequestService) MergeMR(ctx context.Context, mrID, mergedBy string, squash bool) (*domain.MergeRequest, error) {
	if err := s.mrRepo.Merge(ctx, mrID, time.Now()); err != nil {
		return nil, fmt.Errorf("merge mr: %w", err)
	}

	merged, err := s.mrRepo.GetByID(ctx, mrID)
	if err != nil {
		return nil, fmt.Errorf("get merged mr: %w", err)
	}

	s.logger.Info("merge request merged",
		"mr_id", mrID,
		"merged_by", mergedBy,
		"squash", squash,
		"merged_at", merged.MergedAt,
	)

	return merged, nil
}

func (s *MergeRequestService) ListReviews(ctx context.Context, mrID string) ([]*domain.Review, error) {
	reviews, err := s.mrRepo.ListReviews(ctx, mrID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
