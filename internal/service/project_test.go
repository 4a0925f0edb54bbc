package service

import (
	"context"
	"testing"

	"github.com/BlackRoad-OS/blackroad-os-gitlab/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectDerivesIDAndCloneURL(t *testing.T) {
	ctx := context.Background()
	repo := &projectRepoMock{}
	svc := NewProjectService(repo, "git.blackroad.local", testLogger())

	repo.On("Create", ctx, mock.MatchedBy(func(p *domain.Project) bool {
		return p.ID == "685c5fbf" &&
			p.CloneURL == "git@git.blackroad.local:acme/widgets.git" &&
			p.Visibility == domain.VisibilityPrivate &&
			p.DefaultBranch == "main" &&
			!p.HasCI && p.StarCount == 0 && p.ForkCount == 0 &&
			p.LastPushedAt == nil
	})).Return(nil)

	project, err := svc.CreateProject(ctx, "acme", "widgets", "widget factory", "", "")
	require.NoError(t, err)
	require.Equal(t, "685c5fbf", project.ID)
	require.Equal(t, "git@git.blackroad.local:acme/widgets.git", project.CloneURL)
	require.NotZero(t, project.CreatedAt)
	require.Empty(t, project.Topics)
	repo.AssertExpectations(t)
}

func TestCreateProjectDuplicateSurfaces(t *testing.T) {
	ctx := context.Background()
	repo := &projectRepoMock{}
	svc := NewProjectService(repo, "git.blackroad.local", testLogger())

	repo.On("Create", ctx, mock.Anything).Return(domain.ErrProjectExists)

	_, err := svc.CreateProject(ctx, "acme", "widgets", "", "private", "main")
	require.ErrorIs(t, err, domain.ErrProjectExists)
}

func TestProjectStatsPassRateFormatting(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name      string
		pipelines int64
		passed    int64
		want      string
	}{
		{"no pipelines", 0, 0, "0.0%"},
		{"one of three passed", 3, 1, "33.3%"},
		{"all passed", 4, 4, "100.0%"},
		{"two thirds", 3, 2, "66.7%"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &projectRepoMock{}
			svc := NewProjectService(repo, "git.blackroad.local", testLogger())

			repo.On("Stats", ctx, "685c5fbf").Return(&domain.ProjectStats{
				ProjectID:       "685c5fbf",
				MergeRequests:   2,
				Pipelines:       tc.pipelines,
				PassedPipelines: tc.passed,
			}, nil)

			stats, err := svc.ProjectStats(ctx, "685c5fbf")
			require.NoError(t, err)
			require.Equal(t, tc.want, stats.PassRate)
		})
	}
}

func TestSearchProjectsPassesFilters(t *testing.T) {
	ctx := context.Background()
	repo := &projectRepoMock{}
	svc := NewProjectService(repo, "git.blackroad.local", testLogger())

	found := []*domain.Project{{ID: "685c5fbf", Name: "widgets"}}
	repo.On("Search", ctx, "widg", domain.VisibilityPublic).Return(found, nil)

	projects, err := svc.SearchProjects(ctx, "widg", domain.VisibilityPublic)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "widgets", projects[0].Name)
	repo.AssertExpectations(t)
}

func TestRecordPushStampsNow(t *testing.T) {
	ctx := context.Background()
	repo := &projectRepoMock{}
	svc := NewProjectService(repo, "git.blackroad.local", testLogger())

	repo.On("RecordPush", ctx, "685c5fbf", mock.AnythingOfType("time.Time")).Return(nil)

	require.NoError(t, svc.RecordPush(ctx, "685c5fbf"))
	repo.AssertExpectations(t)
}
