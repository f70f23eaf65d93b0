package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/devjournal/pkg/domain/mock"
	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/infra"
	"github.com/m-mizutani/devjournal/pkg/repository/memory"
	"github.com/m-mizutani/devjournal/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func syncInput() *model.SyncInput {
	return &model.SyncInput{
		UserID: "1234",
		Login:  "mizutani",
		Token:  "ghp_dummy",
	}
}

func TestSyncUserActivities(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty tracking syncs the whole event feed", func(t *testing.T) {
		mockGH := &mock.GitHubClientMock{}
		memRepo := memory.New()
		uc := usecase.New(infra.New(
			infra.WithGitHub(mockGH),
			infra.WithRepository(memRepo),
		))

		ctx := context.Background()

		mockGH.ListUserEventsFunc = func(ctx context.Context, token types.GitHubToken, login string) ([]*github.Event, error) {
			gt.V(t, login).Equal("mizutani")
			return []*github.Event{
				feedEvent(t, "PushEvent", "m-mizutani/devjournal", &github.PushEvent{
					Ref:  github.String("refs/heads/main"),
					Head: github.String("abc123"),
					Commits: []*github.HeadCommit{
						{Message: github.String("one")},
						{Message: github.String("two")},
						{Message: github.String("three")},
					},
				}, now),
				feedEvent(t, "ForkEvent", "m-mizutani/devjournal", &github.ForkEvent{}, now),
			}, nil
		}

		n := gt.R1(uc.SyncUserActivities(ctx, syncInput())).NoError(t)
		gt.V(t, n).Equal(1)

		stored := gt.R1(memRepo.ListActivities(ctx, "1234", 10)).NoError(t)
		gt.V(t, len(stored)).Equal(1)
		gt.V(t, stored[0].Title).Equal("Pushed 3 commits")
		gt.V(t, len(mockGH.ListRepoEventsCalls())).Equal(0)

		// Re-syncing the same feed persists nothing new
		n = gt.R1(uc.SyncUserActivities(ctx, syncInput())).NoError(t)
		gt.V(t, n).Equal(0)
		stored = gt.R1(memRepo.ListActivities(ctx, "1234", 10)).NoError(t)
		gt.V(t, len(stored)).Equal(1)
	})

	t.Run("tracked repositories sync per-repo feeds", func(t *testing.T) {
		mockGH := &mock.GitHubClientMock{}
		memRepo := memory.New()
		uc := usecase.New(infra.New(
			infra.WithGitHub(mockGH),
			infra.WithRepository(memRepo),
		))

		ctx := context.Background()

		settings := model.DefaultSettings("1234")
		settings.TrackedRepositories = []string{"m-mizutani/goerr"}
		gt.NoError(t, memRepo.PutUserSettings(ctx, settings))

		mockGH.ListRepoEventsFunc = func(ctx context.Context, token types.GitHubToken, owner, repo string) ([]*github.Event, error) {
			gt.V(t, owner).Equal("m-mizutani")
			gt.V(t, repo).Equal("goerr")
			return []*github.Event{
				feedEvent(t, "WatchEvent", "m-mizutani/goerr", &github.WatchEvent{
					Action: github.String("started"),
				}, now),
			}, nil
		}

		n := gt.R1(uc.SyncUserActivities(ctx, syncInput())).NoError(t)
		gt.V(t, n).Equal(1)

		stored := gt.R1(memRepo.ListActivities(ctx, "1234", 10)).NoError(t)
		gt.V(t, len(stored)).Equal(1)
		gt.V(t, stored[0].Kind).Equal(types.ActivityStar)
		gt.V(t, stored[0].Repository).Equal("m-mizutani/goerr")
		gt.V(t, len(mockGH.ListUserEventsCalls())).Equal(0)
	})

	t.Run("failing tracked repository does not abort the rest", func(t *testing.T) {
		mockGH := &mock.GitHubClientMock{}
		memRepo := memory.New()
		uc := usecase.New(infra.New(
			infra.WithGitHub(mockGH),
			infra.WithRepository(memRepo),
		))

		ctx := context.Background()

		settings := model.DefaultSettings("1234")
		settings.TrackedRepositories = []string{"m-mizutani/broken", "m-mizutani/goerr"}
		gt.NoError(t, memRepo.PutUserSettings(ctx, settings))

		mockGH.ListRepoEventsFunc = func(ctx context.Context, token types.GitHubToken, owner, repo string) ([]*github.Event, error) {
			if repo == "broken" {
				return nil, goerr.Wrap(types.ErrSourceUnavailable, "upstream error")
			}
			return []*github.Event{
				feedEvent(t, "WatchEvent", "m-mizutani/goerr", &github.WatchEvent{
					Action: github.String("started"),
				}, now),
			}, nil
		}

		n := gt.R1(uc.SyncUserActivities(ctx, syncInput())).NoError(t)
		gt.V(t, n).Equal(1)
		gt.V(t, len(mockGH.ListRepoEventsCalls())).Equal(2)
	})

	t.Run("malformed tracked repository is skipped", func(t *testing.T) {
		mockGH := &mock.GitHubClientMock{}
		memRepo := memory.New()
		uc := usecase.New(infra.New(
			infra.WithGitHub(mockGH),
			infra.WithRepository(memRepo),
		))

		ctx := context.Background()

		settings := model.DefaultSettings("1234")
		settings.TrackedRepositories = []string{"not-a-full-name"}
		gt.NoError(t, memRepo.PutUserSettings(ctx, settings))

		n := gt.R1(uc.SyncUserActivities(ctx, syncInput())).NoError(t)
		gt.V(t, n).Equal(0)
		gt.V(t, len(mockGH.ListRepoEventsCalls())).Equal(0)
	})

	t.Run("invalid input is rejected", func(t *testing.T) {
		uc := usecase.New(infra.New())

		_, err := uc.SyncUserActivities(context.Background(), &model.SyncInput{})
		gt.Error(t, err)
	})
}
