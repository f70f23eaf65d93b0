package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubClient BigQuery SessionVerifier

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/google/go-github/v53/github"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
)

// GitHubClient is the external activity source adapter. Every operation
// issues one outbound request with the given bearer credential and wraps a
// non-2xx response into types.ErrSourceUnavailable carrying the upstream
// status code.
type GitHubClient interface {
	GetAuthenticatedUser(ctx context.Context, token types.GitHubToken) (*github.User, error)
	ListUserRepos(ctx context.Context, token types.GitHubToken) ([]*github.Repository, error)
	ListUserEvents(ctx context.Context, token types.GitHubToken, login string) ([]*github.Event, error)
	ListRepoEvents(ctx context.Context, token types.GitHubToken, owner, repo string) ([]*github.Event, error)
}

// BigQuery is the optional analytics sink for ingested activity records.
type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error
	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// SessionVerifier resolves a bearer token presented to the API into the
// identity minted by the external identity provider.
type SessionVerifier interface {
	Verify(ctx context.Context, token types.GitHubToken) (*model.Session, error)
}
