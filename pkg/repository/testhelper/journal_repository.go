package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/devjournal/pkg/domain/interfaces"
	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/repository"
	"github.com/m-mizutani/gt"
)

// TestAll runs all test cases for Repository
// This is the main entry point for testing any Repository implementation
func TestAll(t *testing.T, repo interfaces.Repository) {
	t.Run("ActivityDedupe", func(t *testing.T) {
		TestActivityDedupe(t, repo)
	})
	t.Run("ActivityListOrder", func(t *testing.T) {
		TestActivityListOrder(t, repo)
	})
	t.Run("SettingsCRUD", func(t *testing.T) {
		TestSettingsCRUD(t, repo)
	})
	t.Run("UsersTracking", func(t *testing.T) {
		TestUsersTracking(t, repo)
	})
	t.Run("SummaryLifecycle", func(t *testing.T) {
		TestSummaryLifecycle(t, repo)
	})
}

func newUserID() types.UserID {
	return types.UserID(uuid.New().String()[:8])
}

func newActivity(userID types.UserID, url string, createdAt time.Time) *model.Activity {
	return &model.Activity{
		ID:         types.NewActivityID(),
		UserID:     userID,
		Kind:       types.ActivityCommit,
		Repository: "m-mizutani/devjournal",
		Title:      "Pushed 1 commits",
		URL:        url,
		CreatedAt:  createdAt,
	}
}

// TestActivityDedupe verifies the conditional insert: only candidates with a
// URL not yet stored for the user are persisted, within one batch and across
// batches.
func TestActivityDedupe(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()
	userID := newUserID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	urlA := fmt.Sprintf("https://github.com/x/y/commit/%s", uuid.New().String())
	urlB := fmt.Sprintf("https://github.com/x/y/commit/%s", uuid.New().String())

	inserted, err := repo.InsertActivities(ctx, userID, []*model.Activity{
		newActivity(userID, urlA, now),
		newActivity(userID, urlA, now), // duplicate within the batch
		newActivity(userID, urlB, now),
	})
	gt.NoError(t, err)
	gt.V(t, len(inserted)).Equal(2)

	// Re-inserting the same URLs persists nothing
	inserted, err = repo.InsertActivities(ctx, userID, []*model.Activity{
		newActivity(userID, urlA, now),
		newActivity(userID, urlB, now),
	})
	gt.NoError(t, err)
	gt.V(t, len(inserted)).Equal(0)

	stored, err := repo.ListActivities(ctx, userID, 10)
	gt.NoError(t, err)
	gt.V(t, len(stored)).Equal(2)

	// Another user can store the same URL
	otherID := newUserID()
	inserted, err = repo.InsertActivities(ctx, otherID, []*model.Activity{
		newActivity(otherID, urlA, now),
	})
	gt.NoError(t, err)
	gt.V(t, len(inserted)).Equal(1)
}

// TestActivityListOrder verifies newest-first ordering and the limit.
func TestActivityListOrder(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()
	userID := newUserID()
	base := time.Now().UTC().Truncate(time.Microsecond)

	var batch []*model.Activity
	for i := 0; i < 5; i++ {
		url := fmt.Sprintf("https://github.com/x/y/commit/%s", uuid.New().String())
		batch = append(batch, newActivity(userID, url, base.Add(time.Duration(i)*time.Minute)))
	}
	inserted, err := repo.InsertActivities(ctx, userID, batch)
	gt.NoError(t, err)
	gt.V(t, len(inserted)).Equal(5)

	stored, err := repo.ListActivities(ctx, userID, 3)
	gt.NoError(t, err)
	gt.V(t, len(stored)).Equal(3)
	gt.V(t, stored[0].CreatedAt).Equal(base.Add(4 * time.Minute))
	gt.V(t, stored[1].CreatedAt).Equal(base.Add(3 * time.Minute))
	gt.V(t, stored[2].CreatedAt).Equal(base.Add(2 * time.Minute))
}

// TestSettingsCRUD tests basic operations for UserSettings
func TestSettingsCRUD(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()
	userID := newUserID()

	// Not found before any write
	_, err := repo.GetUserSettings(ctx, userID)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	now := time.Now().UTC().Truncate(time.Microsecond)
	settings := &model.UserSettings{
		UserID:              userID,
		TrackedRepositories: []string{"m-mizutani/devjournal"},
		SummaryFrequency:    types.PeriodWeekly,
		PromptStyle:         "developer",
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	gt.NoError(t, repo.PutUserSettings(ctx, settings))

	retrieved, err := repo.GetUserSettings(ctx, userID)
	gt.NoError(t, err)
	gt.V(t, retrieved.TrackedRepositories).Equal([]string{"m-mizutani/devjournal"})
	gt.V(t, retrieved.SummaryFrequency).Equal(types.PeriodWeekly)
	gt.V(t, retrieved.PromptStyle).Equal("developer")
	gt.True(t, retrieved.CreatedAt.Equal(now))
	gt.True(t, retrieved.UpdatedAt.Equal(now))

	// Put replaces the whole record, timestamps included
	settings.TrackedRepositories = []string{}
	settings.SummaryFrequency = types.PeriodDaily
	settings.UpdatedAt = now.Add(time.Hour)
	gt.NoError(t, repo.PutUserSettings(ctx, settings))

	retrieved, err = repo.GetUserSettings(ctx, userID)
	gt.NoError(t, err)
	gt.V(t, len(retrieved.TrackedRepositories)).Equal(0)
	gt.V(t, retrieved.SummaryFrequency).Equal(types.PeriodDaily)
	gt.True(t, retrieved.CreatedAt.Equal(now))
	gt.True(t, retrieved.UpdatedAt.Equal(now.Add(time.Hour)))
}

// TestUsersTracking verifies the webhook fan-out query.
func TestUsersTracking(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()
	tracked := fmt.Sprintf("owner-%s/repo", uuid.New().String()[:8])
	now := time.Now().UTC().Truncate(time.Microsecond)

	trackerA := newUserID()
	trackerB := newUserID()
	bystander := newUserID()

	for _, userID := range []types.UserID{trackerA, trackerB} {
		gt.NoError(t, repo.PutUserSettings(ctx, &model.UserSettings{
			UserID:              userID,
			TrackedRepositories: []string{tracked, "m-mizutani/other"},
			SummaryFrequency:    types.PeriodWeekly,
			PromptStyle:         "developer",
			CreatedAt:           now,
			UpdatedAt:           now,
		}))
	}
	gt.NoError(t, repo.PutUserSettings(ctx, &model.UserSettings{
		UserID:              bystander,
		TrackedRepositories: []string{"m-mizutani/other"},
		SummaryFrequency:    types.PeriodWeekly,
		PromptStyle:         "developer",
		CreatedAt:           now,
		UpdatedAt:           now,
	}))

	trackers, err := repo.ListUsersTracking(ctx, tracked)
	gt.NoError(t, err)
	gt.V(t, len(trackers)).Equal(2)

	found := map[types.UserID]bool{}
	for _, s := range trackers {
		found[s.UserID] = true
	}
	gt.True(t, found[trackerA])
	gt.True(t, found[trackerB])
	gt.False(t, found[bystander])
}

// TestSummaryLifecycle tests create, read and idempotent publish.
func TestSummaryLifecycle(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()
	userID := newUserID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	summary := &model.Summary{
		ID:        types.NewSummaryID(),
		UserID:    userID,
		Period:    types.PeriodDaily,
		Content:   "# Daily journal\n",
		Generated: true,
		CreatedAt: now,
	}
	gt.NoError(t, repo.CreateSummary(ctx, summary))

	// Duplicate ID is rejected
	err := repo.CreateSummary(ctx, summary)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

	retrieved, err := repo.GetSummary(ctx, userID, summary.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Content).Equal(summary.Content)
	gt.False(t, retrieved.Published)

	summaries, err := repo.ListSummaries(ctx, userID)
	gt.NoError(t, err)
	gt.V(t, len(summaries)).Equal(1)

	publishedAt := now.Add(time.Hour)
	published, err := repo.PublishSummary(ctx, userID, summary.ID, publishedAt)
	gt.NoError(t, err)
	gt.True(t, published.Published)
	gt.V(t, published.PublishedAt.Equal(publishedAt)).Equal(true)

	// Publishing again keeps the original timestamp
	again, err := repo.PublishSummary(ctx, userID, summary.ID, publishedAt.Add(time.Hour))
	gt.NoError(t, err)
	gt.True(t, again.Published)
	gt.V(t, again.PublishedAt.Equal(publishedAt)).Equal(true)

	// Unknown summary
	_, err = repo.PublishSummary(ctx, userID, "no-such-id", publishedAt)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	// Another user cannot see it
	_, err = repo.GetSummary(ctx, newUserID(), summary.ID)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}
