package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/repository"
)

const maxProfileRepos = 10

// GitHubProfile fetches the authenticated account and its recently updated
// repositories with two concurrent source reads. The repository list is
// capped to the ten most recently updated entries.
func (x *UseCase) GitHubProfile(ctx context.Context, token types.GitHubToken) (*model.GitHubProfile, error) {
	profile := &model.GitHubProfile{}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		user, err := x.clients.GitHub().GetAuthenticatedUser(ctx, token)
		if err != nil {
			return err
		}
		profile.User = &model.GitHubUser{
			ID:        user.GetID(),
			Login:     user.GetLogin(),
			Name:      user.GetName(),
			AvatarURL: user.GetAvatarURL(),
		}
		return nil
	})
	eg.Go(func() error {
		repos, err := x.clients.GitHub().ListUserRepos(ctx, token)
		if err != nil {
			return err
		}
		if len(repos) > maxProfileRepos {
			repos = repos[:maxProfileRepos]
		}
		for _, r := range repos {
			profile.Repositories = append(profile.Repositories, &model.GitHubRepository{
				ID:          r.GetID(),
				FullName:    r.GetFullName(),
				Description: r.GetDescription(),
				Private:     r.GetPrivate(),
				Stars:       r.GetStargazersCount(),
				UpdatedAt:   r.GetUpdatedAt().Time,
			})
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch GitHub profile")
	}

	return profile, nil
}

// ListRepositories lists the repositories visible to the session credential
// with the tracking flag of the user filled in.
func (x *UseCase) ListRepositories(ctx context.Context, session *model.Session) ([]*model.GitHubRepository, error) {
	repos, err := x.clients.GitHub().ListUserRepos(ctx, session.Token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories")
	}

	settings, err := x.clients.Repository().GetUserSettings(ctx, session.UserID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, goerr.Wrap(err, "failed to load tracking preference", goerr.V("userID", session.UserID))
	}

	result := make([]*model.GitHubRepository, 0, len(repos))
	for _, r := range repos {
		repo := &model.GitHubRepository{
			ID:          r.GetID(),
			FullName:    r.GetFullName(),
			Description: r.GetDescription(),
			Private:     r.GetPrivate(),
			Stars:       r.GetStargazersCount(),
			UpdatedAt:   r.GetUpdatedAt().Time,
		}
		if settings != nil {
			repo.Tracked = settings.Tracks(repo.FullName)
		}
		result = append(result, repo)
	}

	return result, nil
}
