package memory

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/repository"
)

func (r *journalRepository) GetUserSettings(ctx context.Context, userID types.UserID) (*model.UserSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings, exists := r.settings[userID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "user settings not found",
			goerr.V("userID", userID),
		)
	}

	return copySettings(settings), nil
}

func (r *journalRepository) PutUserSettings(ctx context.Context, settings *model.UserSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings[settings.UserID] = copySettings(settings)

	return nil
}

func (r *journalRepository) ListUsersTracking(ctx context.Context, repo string) ([]*model.UserSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var trackers []*model.UserSettings
	for _, settings := range r.settings {
		if settings.Tracks(repo) {
			trackers = append(trackers, copySettings(settings))
		}
	}

	return trackers, nil
}

func copySettings(s *model.UserSettings) *model.UserSettings {
	c := *s
	c.TrackedRepositories = append([]string{}, s.TrackedRepositories...)
	return &c
}
