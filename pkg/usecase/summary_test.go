package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/devjournal/pkg/domain/interfaces"
	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/infra"
	"github.com/m-mizutani/devjournal/pkg/repository/memory"
	"github.com/m-mizutani/devjournal/pkg/usecase"
	"github.com/m-mizutani/devjournal/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func storeActivity(t *testing.T, repo interfaces.Repository, userID types.UserID, url string, createdAt time.Time) {
	t.Helper()
	inserted := gt.R1(repo.InsertActivities(context.Background(), userID, []*model.Activity{{
		ID:         types.NewActivityID(),
		UserID:     userID,
		Kind:       types.ActivityCommit,
		Repository: "m-mizutani/devjournal",
		Title:      "Pushed 1 commits",
		URL:        url,
		CreatedAt:  createdAt,
	}})).NoError(t)
	gt.V(t, len(inserted)).Equal(1)
}

func TestGenerateSummary(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	t.Run("daily summary over recent activity", func(t *testing.T) {
		memRepo := memory.New()
		uc := usecase.New(infra.New(infra.WithRepository(memRepo)))
		ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now })

		storeActivity(t, memRepo, "1234", "https://github.com/m-mizutani/devjournal/commit/a", now.Add(-2*time.Hour))
		storeActivity(t, memRepo, "1234", "https://github.com/m-mizutani/devjournal/commit/b", now.Add(-48*time.Hour))

		summary := gt.R1(uc.GenerateSummary(ctx, &model.GenerateSummaryInput{
			UserID: "1234",
			Period: types.PeriodDaily,
		})).NoError(t)

		gt.V(t, summary.Period).Equal(types.PeriodDaily)
		gt.True(t, summary.Generated)
		gt.False(t, summary.Published)
		gt.True(t, strings.Contains(summary.Content, "1 activities"))
		gt.True(t, strings.Contains(summary.Content, "m-mizutani/devjournal"))

		stored := gt.R1(memRepo.ListSummaries(ctx, "1234")).NoError(t)
		gt.V(t, len(stored)).Equal(1)
	})

	t.Run("weekly summary includes the whole week", func(t *testing.T) {
		memRepo := memory.New()
		uc := usecase.New(infra.New(infra.WithRepository(memRepo)))
		ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now })

		storeActivity(t, memRepo, "1234", "https://github.com/m-mizutani/devjournal/commit/a", now.Add(-2*time.Hour))
		storeActivity(t, memRepo, "1234", "https://github.com/m-mizutani/devjournal/commit/b", now.Add(-3*24*time.Hour))

		summary := gt.R1(uc.GenerateSummary(ctx, &model.GenerateSummaryInput{
			UserID: "1234",
			Period: types.PeriodWeekly,
		})).NoError(t)

		gt.True(t, strings.Contains(summary.Content, "2 activities"))
	})

	t.Run("empty window is rejected and nothing is created", func(t *testing.T) {
		memRepo := memory.New()
		uc := usecase.New(infra.New(infra.WithRepository(memRepo)))
		ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now })

		storeActivity(t, memRepo, "1234", "https://github.com/m-mizutani/devjournal/commit/old", now.Add(-72*time.Hour))

		_, err := uc.GenerateSummary(ctx, &model.GenerateSummaryInput{
			UserID: "1234",
			Period: types.PeriodDaily,
		})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))

		stored := gt.R1(memRepo.ListSummaries(ctx, "1234")).NoError(t)
		gt.V(t, len(stored)).Equal(0)
	})

	t.Run("invalid period is rejected", func(t *testing.T) {
		uc := usecase.New(infra.New())

		_, err := uc.GenerateSummary(context.Background(), &model.GenerateSummaryInput{
			UserID: "1234",
			Period: "monthly",
		})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})
}

func TestPublishSummary(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	t.Run("publish sets flag and timestamp, and is idempotent", func(t *testing.T) {
		memRepo := memory.New()
		uc := usecase.New(infra.New(infra.WithRepository(memRepo)))
		ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now })

		storeActivity(t, memRepo, "1234", "https://github.com/m-mizutani/devjournal/commit/a", now.Add(-time.Hour))
		summary := gt.R1(uc.GenerateSummary(ctx, &model.GenerateSummaryInput{
			UserID: "1234",
			Period: types.PeriodDaily,
		})).NoError(t)

		published := gt.R1(uc.PublishSummary(ctx, "1234", summary.ID)).NoError(t)
		gt.True(t, published.Published)
		gt.V(t, *published.PublishedAt).Equal(now)

		later := logging.CtxWithTime(context.Background(), func() time.Time { return now.Add(time.Hour) })
		again := gt.R1(uc.PublishSummary(later, "1234", summary.ID)).NoError(t)
		gt.True(t, again.Published)
		gt.V(t, *again.PublishedAt).Equal(now)
	})

	t.Run("publishing unknown summary fails", func(t *testing.T) {
		uc := usecase.New(infra.New())

		_, err := uc.PublishSummary(context.Background(), "1234", "no-such-id")
		gt.Error(t, err)
	})
}
