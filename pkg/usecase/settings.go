package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/repository"
	"github.com/m-mizutani/devjournal/pkg/utils/logging"
)

// GetPreferences returns the stored settings of the user, or the defaults
// for a user who has never saved any.
func (x *UseCase) GetPreferences(ctx context.Context, userID types.UserID) (*model.UserSettings, error) {
	settings, err := x.clients.Repository().GetUserSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.DefaultSettings(userID), nil
		}
		return nil, goerr.Wrap(err, "failed to load settings", goerr.V("userID", userID))
	}
	return settings, nil
}

// UpdatePreferences validates and stores the whole settings record. The
// stored UpdatedAt always moves forward; CreatedAt of an existing record is
// preserved.
func (x *UseCase) UpdatePreferences(ctx context.Context, settings *model.UserSettings) (*model.UserSettings, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if settings.TrackedRepositories == nil {
		settings.TrackedRepositories = []string{}
	}

	now := logging.CtxTime(ctx)
	current, err := x.clients.Repository().GetUserSettings(ctx, settings.UserID)
	switch {
	case err == nil:
		settings.CreatedAt = current.CreatedAt
	case errors.Is(err, repository.ErrNotFound):
		settings.CreatedAt = now
	default:
		return nil, goerr.Wrap(err, "failed to load settings", goerr.V("userID", settings.UserID))
	}
	settings.UpdatedAt = now

	if err := x.clients.Repository().PutUserSettings(ctx, settings); err != nil {
		return nil, goerr.Wrap(err, "failed to store settings", goerr.V("userID", settings.UserID))
	}

	return settings, nil
}

// SetRepositoryTracking adds or removes one repository in the tracked list
// and returns the resulting list. Adding an already-tracked repository or
// removing an untracked one is a no-op.
func (x *UseCase) SetRepositoryTracking(ctx context.Context, userID types.UserID, repo string, tracked bool) ([]string, error) {
	if repo == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "repository is empty")
	}

	settings, err := x.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if tracked {
		if !settings.Tracks(repo) {
			settings.TrackedRepositories = append(settings.TrackedRepositories, repo)
		}
	} else {
		kept := settings.TrackedRepositories[:0]
		for _, r := range settings.TrackedRepositories {
			if r != repo {
				kept = append(kept, r)
			}
		}
		settings.TrackedRepositories = kept
	}

	updated, err := x.UpdatePreferences(ctx, settings)
	if err != nil {
		return nil, err
	}
	return updated.TrackedRepositories, nil
}
