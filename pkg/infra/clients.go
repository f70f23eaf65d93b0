package infra

import (
	"github.com/m-mizutani/devjournal/pkg/domain/interfaces"
	"github.com/m-mizutani/devjournal/pkg/infra/githubapi"
	"github.com/m-mizutani/devjournal/pkg/repository/memory"
)

type Clients struct {
	repo     interfaces.Repository
	github   interfaces.GitHubClient
	bqClient interfaces.BigQuery
	verifier interfaces.SessionVerifier
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	clients := &Clients{
		repo:   memory.New(),
		github: githubapi.New(),
	}

	for _, opt := range options {
		opt(clients)
	}

	return clients
}

func (x *Clients) Repository() interfaces.Repository {
	return x.repo
}
func (x *Clients) GitHub() interfaces.GitHubClient {
	return x.github
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) SessionVerifier() interfaces.SessionVerifier {
	return x.verifier
}

func WithRepository(repo interfaces.Repository) Option {
	return func(x *Clients) {
		x.repo = repo
	}
}

func WithGitHub(client interfaces.GitHubClient) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithSessionVerifier(verifier interfaces.SessionVerifier) Option {
	return func(x *Clients) {
		x.verifier = verifier
	}
}
