package model

import (
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Session is the identity minted by the external identity provider: a stable
// user identifier plus the GitHub access token of that user.
type Session struct {
	UserID types.UserID
	Login  string
	Token  types.GitHubToken
}

type SyncInput struct {
	UserID types.UserID
	Login  string
	Token  types.GitHubToken
}

func (x *SyncInput) Validate() error {
	if x.UserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user ID is empty")
	}
	if x.Login == "" {
		return goerr.Wrap(types.ErrValidationFailed, "login is empty")
	}
	if x.Token == "" {
		return goerr.Wrap(types.ErrValidationFailed, "token is empty")
	}
	return nil
}

type GenerateSummaryInput struct {
	UserID types.UserID
	Period types.SummaryPeriod
}

func (x *GenerateSummaryInput) Validate() error {
	if x.UserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user ID is empty")
	}
	return x.Period.Validate()
}
