package githubapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/infra/githubapi"
	"github.com/m-mizutani/gt"
)

func TestGetAuthenticatedUser(t *testing.T) {
	t.Run("sends bearer token and decodes the user", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/user")
			gt.V(t, r.Header.Get("Authorization")).Equal("Bearer ghp_dummy")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": 42, "login": "mizutani"}`))
		}))
		defer srv.Close()

		client := githubapi.New(githubapi.WithBaseURL(srv.URL))
		user := gt.R1(client.GetAuthenticatedUser(context.Background(), "ghp_dummy")).NoError(t)
		gt.V(t, user.GetID()).Equal(int64(42))
		gt.V(t, user.GetLogin()).Equal("mizutani")
	})

	t.Run("non-2xx becomes source unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := githubapi.New(githubapi.WithBaseURL(srv.URL))
		_, err := client.GetAuthenticatedUser(context.Background(), "ghp_bad")
		gt.True(t, errors.Is(err, types.ErrSourceUnavailable))
	})
}

func TestListUserEvents(t *testing.T) {
	t.Run("requests one page of the user feed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/users/mizutani/events")
			gt.V(t, r.URL.Query().Get("per_page")).Equal("100")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"type": "PushEvent", "repo": {"name": "m-mizutani/devjournal"}}]`))
		}))
		defer srv.Close()

		client := githubapi.New(githubapi.WithBaseURL(srv.URL))
		events := gt.R1(client.ListUserEvents(context.Background(), "ghp_dummy", "mizutani")).NoError(t)
		gt.V(t, len(events)).Equal(1)
		gt.V(t, events[0].GetType()).Equal("PushEvent")
		gt.V(t, events[0].GetRepo().GetName()).Equal("m-mizutani/devjournal")
	})
}

func TestListRepoEvents(t *testing.T) {
	t.Run("requests one page of the repository feed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/repos/m-mizutani/goerr/events")
			gt.V(t, r.URL.Query().Get("per_page")).Equal("50")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		client := githubapi.New(githubapi.WithBaseURL(srv.URL))
		events := gt.R1(client.ListRepoEvents(context.Background(), "ghp_dummy", "m-mizutani", "goerr")).NoError(t)
		gt.V(t, len(events)).Equal(0)
	})

	t.Run("upstream failure carries the status code", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := githubapi.New(githubapi.WithBaseURL(srv.URL))
		_, err := client.ListRepoEvents(context.Background(), "ghp_dummy", "m-mizutani", "goerr")
		gt.True(t, errors.Is(err, types.ErrSourceUnavailable))
	})
}

func TestListUserRepos(t *testing.T) {
	t.Run("requests repositories sorted by update time", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/user/repos")
			gt.V(t, r.URL.Query().Get("sort")).Equal("updated")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id": 1, "full_name": "m-mizutani/devjournal"}]`))
		}))
		defer srv.Close()

		client := githubapi.New(githubapi.WithBaseURL(srv.URL))
		repos := gt.R1(client.ListUserRepos(context.Background(), "ghp_dummy")).NoError(t)
		gt.V(t, len(repos)).Equal(1)
		gt.V(t, repos[0].GetFullName()).Equal("m-mizutani/devjournal")
	})
}
