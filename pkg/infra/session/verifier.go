package session

import (
	"context"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/devjournal/pkg/domain/interfaces"
	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
)

// Verifier resolves a presented bearer token into a session by asking the
// activity source who the token belongs to. The identity provider that
// minted the token stays external; this only maps token to a stable user ID.
type Verifier struct {
	gh interfaces.GitHubClient
}

var _ interfaces.SessionVerifier = (*Verifier)(nil)

func New(gh interfaces.GitHubClient) *Verifier {
	return &Verifier{gh: gh}
}

func (x *Verifier) Verify(ctx context.Context, token types.GitHubToken) (*model.Session, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrUnauthorized, "no credential presented")
	}

	user, err := x.gh.GetAuthenticatedUser(ctx, token)
	if err != nil {
		return nil, goerr.Wrap(types.ErrUnauthorized, "failed to resolve identity", goerr.V("cause", err))
	}

	return &model.Session{
		UserID: types.UserID(strconv.FormatInt(user.GetID(), 10)),
		Login:  user.GetLogin(),
		Token:  token,
	}, nil
}
