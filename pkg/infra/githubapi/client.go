package githubapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/m-mizutani/devjournal/pkg/domain/interfaces"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
)

const userAgent = "devjournal"

// Client is the external activity source adapter over the GitHub REST API.
// Each operation issues a single request with the given bearer credential:
// no retry, no pagination beyond the first page.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ interfaces.GitHubClient = (*Client)(nil)

type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

func New(options ...Option) *Client {
	client := &Client{
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

func (x *Client) newClient(ctx context.Context, token types.GitHubToken) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	httpCtx := context.WithValue(ctx, oauth2.HTTPClient, x.httpClient)

	gh := github.NewClient(oauth2.NewClient(httpCtx, ts))
	gh.UserAgent = userAgent

	if x.baseURL != "" {
		endpoint := x.baseURL
		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}
		parsed, err := url.Parse(endpoint)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid base URL", goerr.V("url", x.baseURL))
		}
		gh.BaseURL = parsed
	}

	return gh, nil
}

func errSource(err error, resp *github.Response, msg string, options ...goerr.Option) error {
	opts := append([]goerr.Option{goerr.V("cause", err)}, options...)
	if resp != nil {
		opts = append(opts, goerr.V("status_code", resp.StatusCode))
	}
	return goerr.Wrap(types.ErrSourceUnavailable, msg, opts...)
}

func (x *Client) GetAuthenticatedUser(ctx context.Context, token types.GitHubToken) (*github.User, error) {
	gh, err := x.newClient(ctx, token)
	if err != nil {
		return nil, err
	}

	user, resp, err := gh.Users.Get(ctx, "")
	if err != nil {
		return nil, errSource(err, resp, "failed to fetch authenticated user")
	}

	return user, nil
}

func (x *Client) ListUserRepos(ctx context.Context, token types.GitHubToken) ([]*github.Repository, error) {
	gh, err := x.newClient(ctx, token)
	if err != nil {
		return nil, err
	}

	repos, resp, err := gh.Repositories.List(ctx, "", &github.RepositoryListOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, errSource(err, resp, "failed to fetch user repositories")
	}

	return repos, nil
}

func (x *Client) ListUserEvents(ctx context.Context, token types.GitHubToken, login string) ([]*github.Event, error) {
	gh, err := x.newClient(ctx, token)
	if err != nil {
		return nil, err
	}

	events, resp, err := gh.Activity.ListEventsPerformedByUser(ctx, login, false, &github.ListOptions{PerPage: 100})
	if err != nil {
		return nil, errSource(err, resp, "failed to fetch user events")
	}

	return events, nil
}

func (x *Client) ListRepoEvents(ctx context.Context, token types.GitHubToken, owner, repo string) ([]*github.Event, error) {
	gh, err := x.newClient(ctx, token)
	if err != nil {
		return nil, err
	}

	events, resp, err := gh.Activity.ListRepositoryEvents(ctx, owner, repo, &github.ListOptions{PerPage: 50})
	if err != nil {
		return nil, errSource(err, resp, "failed to fetch repository events",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return events, nil
}
