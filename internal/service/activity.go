package service

import (
	"context"
	"fmt"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/domain"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/pkg/logger"
	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/repository"
)

type ActivityService struct {
	activityRepo repository.ActivityRepository
	logger       *logger.Logger
	defaultLimit int
}

func NewActivityService(activityRepo repository.ActivityRepository, defaultLimit int, logger *logger.Logger) *ActivityService {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &ActivityService{
		activityRepo: activityRepo,
		logger:       logger.Component("service/activity"),
		defaultLimit: defaultLimit,
	}
}

// Feed runs three independent bounded queries. Only the pushes section
// honors the namespace filter; merge requests and pipelines are
// always global.
func (s *ActivityService) Feed(ctx context.Context, namespace string, n int) (*domain.ActivityFeed, error) {
	if n <= 0 {
		n = s.defaultLimit
	}

	pushes, err := s.activityRepo.RecentPushes(ctx, namespace, n)
	if err != nil {
		return nil, fmt.Errorf("recent pushes: %w", err)
	}

	mrs, err := s.activityRepo.RecentMergeRequests(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("recent mrs: %w", err)
	}

	pipelines, err := s.activityRepo.RecentPipelines(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("recent pipelines: %w", err)
	}

	s.logger.Info("activity feed assembled",
		"namespace", namespace,
		"limit", n,
		"pushes", len(pushes),
		"mrs", len(mrs),
		"pipelines", len(pipelines),
	)

	return &domain.ActivityFeed{
		RecentPushes:    pushes,
		RecentMRs:       mrs,
		RecentPipelines: pipelines,
	}, nil
}
