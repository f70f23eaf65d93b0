package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/repository"
	"github.com/m-mizutani/devjournal/pkg/utils/logging"
)

// SyncUserActivities pulls recent activity from GitHub and persists the
// records not seen before. When the user tracks no repository, the whole
// event feed of the user is synced; otherwise only the tracked repositories
// are. Returns the number of records actually persisted on both paths.
func (x *UseCase) SyncUserActivities(ctx context.Context, input *model.SyncInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	settings, err := x.clients.Repository().GetUserSettings(ctx, input.UserID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return 0, goerr.Wrap(err, "failed to load tracking preference", goerr.V("userID", input.UserID))
	}

	var tracked []string
	if settings != nil {
		tracked = settings.TrackedRepositories
	}

	if len(tracked) == 0 {
		return x.syncAllActivities(ctx, input)
	}
	return x.syncTrackedActivities(ctx, input, tracked)
}

func (x *UseCase) syncAllActivities(ctx context.Context, input *model.SyncInput) (int, error) {
	events, err := x.clients.GitHub().ListUserEvents(ctx, input.Token, input.Login)
	if err != nil {
		return 0, err
	}

	return x.storeActivities(ctx, input.UserID, normalizeFeedEvents(ctx, events))
}

// syncTrackedActivities iterates tracked repositories best-effort: a failing
// fetch is logged and skipped so the remaining repositories still sync.
func (x *UseCase) syncTrackedActivities(ctx context.Context, input *model.SyncInput, tracked []string) (int, error) {
	logger := logging.From(ctx)

	var total int
	for _, fullName := range tracked {
		owner, repoName, ok := strings.Cut(fullName, "/")
		if !ok || owner == "" || repoName == "" {
			logger.Warn("skipping malformed tracked repository", slog.String("repository", fullName))
			continue
		}

		events, err := x.clients.GitHub().ListRepoEvents(ctx, input.Token, owner, repoName)
		if err != nil {
			logger.Warn("failed to fetch repository events",
				slog.String("repository", fullName),
				slog.Any("error", err),
			)
			continue
		}

		n, err := x.storeActivities(ctx, input.UserID, normalizeFeedEvents(ctx, events))
		if err != nil {
			return total, err
		}
		total += n
	}

	return total, nil
}

func normalizeFeedEvents(ctx context.Context, events []*github.Event) []*model.Activity {
	var activities []*model.Activity
	for _, ev := range events {
		activity, ok := normalizeFeedEvent(ev)
		if !ok {
			logging.From(ctx).Debug("dropping event without journal mapping",
				slog.String("type", ev.GetType()),
			)
			continue
		}
		activities = append(activities, activity)
	}
	return activities
}
