package usecase_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func feedEvent(t *testing.T, eventType, repo string, payload any, createdAt time.Time) *github.Event {
	t.Helper()
	raw := gt.R1(json.Marshal(payload)).NoError(t)
	msg := json.RawMessage(raw)
	return &github.Event{
		Type:       github.String(eventType),
		Repo:       &github.Repository{Name: github.String(repo)},
		RawPayload: &msg,
		CreatedAt:  &github.Timestamp{Time: createdAt},
	}
}

func TestNormalizeFeedEvent(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("push event with three commits", func(t *testing.T) {
		ev := feedEvent(t, "PushEvent", "m-mizutani/devjournal", &github.PushEvent{
			Ref:  github.String("refs/heads/main"),
			Head: github.String("abc123"),
			Commits: []*github.HeadCommit{
				{Message: github.String("first")},
				{Message: github.String("second")},
				{Message: github.String("third")},
			},
		}, now)

		activity, ok := usecase.NormalizeFeedEventForTest(ev)
		gt.True(t, ok)
		gt.V(t, activity.Kind).Equal(types.ActivityCommit)
		gt.V(t, activity.Title).Equal("Pushed 3 commits")
		gt.V(t, activity.Description).Equal("first, second, third")
		gt.V(t, activity.URL).Equal("https://github.com/m-mizutani/devjournal/commit/abc123")
		gt.V(t, activity.SHA).Equal("abc123")
		gt.V(t, activity.Branch).Equal("main")
		gt.V(t, activity.CreatedAt).Equal(now)
	})

	t.Run("pull request opened", func(t *testing.T) {
		ev := feedEvent(t, "PullRequestEvent", "m-mizutani/devjournal", &github.PullRequestEvent{
			Action: github.String("opened"),
			PullRequest: &github.PullRequest{
				Title:   github.String("add feature"),
				HTMLURL: github.String("https://github.com/m-mizutani/devjournal/pull/1"),
				Head:    &github.PullRequestBranch{Ref: github.String("feature")},
			},
		}, now)

		activity, ok := usecase.NormalizeFeedEventForTest(ev)
		gt.True(t, ok)
		gt.V(t, activity.Kind).Equal(types.ActivityPullRequest)
		gt.V(t, activity.Title).Equal("Opened PR")
		gt.V(t, activity.Description).Equal("add feature")
		gt.V(t, activity.Branch).Equal("feature")
	})

	t.Run("pull request closed becomes updated", func(t *testing.T) {
		ev := feedEvent(t, "PullRequestEvent", "m-mizutani/devjournal", &github.PullRequestEvent{
			Action: github.String("closed"),
			PullRequest: &github.PullRequest{
				Title:   github.String("add feature"),
				HTMLURL: github.String("https://github.com/m-mizutani/devjournal/pull/1"),
			},
		}, now)

		activity, ok := usecase.NormalizeFeedEventForTest(ev)
		gt.True(t, ok)
		gt.V(t, activity.Title).Equal("Updated PR")
	})

	t.Run("issue opened", func(t *testing.T) {
		ev := feedEvent(t, "IssuesEvent", "m-mizutani/devjournal", &github.IssuesEvent{
			Action: github.String("opened"),
			Issue: &github.Issue{
				Title:   github.String("something broke"),
				HTMLURL: github.String("https://github.com/m-mizutani/devjournal/issues/2"),
			},
		}, now)

		activity, ok := usecase.NormalizeFeedEventForTest(ev)
		gt.True(t, ok)
		gt.V(t, activity.Kind).Equal(types.ActivityIssue)
		gt.V(t, activity.Title).Equal("Opened issue")
	})

	t.Run("watch event becomes star", func(t *testing.T) {
		ev := feedEvent(t, "WatchEvent", "m-mizutani/goerr", &github.WatchEvent{
			Action: github.String("started"),
		}, now)

		activity, ok := usecase.NormalizeFeedEventForTest(ev)
		gt.True(t, ok)
		gt.V(t, activity.Kind).Equal(types.ActivityStar)
		gt.V(t, activity.Title).Equal("Starred repository")
		gt.V(t, activity.URL).Equal("https://github.com/m-mizutani/goerr")
	})

	t.Run("issue comment truncated to 100 chars", func(t *testing.T) {
		long := make([]byte, 150)
		for i := range long {
			long[i] = 'x'
		}
		ev := feedEvent(t, "IssueCommentEvent", "m-mizutani/devjournal", &github.IssueCommentEvent{
			Action: github.String("created"),
			Comment: &github.IssueComment{
				Body:    github.String(string(long)),
				HTMLURL: github.String("https://github.com/m-mizutani/devjournal/issues/2#issuecomment-1"),
			},
		}, now)

		activity, ok := usecase.NormalizeFeedEventForTest(ev)
		gt.True(t, ok)
		gt.V(t, activity.Kind).Equal(types.ActivityComment)
		gt.V(t, activity.Title).Equal("Commented on issue")
		gt.V(t, len(activity.Description)).Equal(100)
	})

	t.Run("unrecognized category is dropped", func(t *testing.T) {
		ev := feedEvent(t, "ForkEvent", "m-mizutani/devjournal", &github.ForkEvent{}, now)

		_, ok := usecase.NormalizeFeedEventForTest(ev)
		gt.False(t, ok)
	})

	t.Run("event without repository is dropped", func(t *testing.T) {
		ev := &github.Event{Type: github.String("PushEvent")}

		_, ok := usecase.NormalizeFeedEventForTest(ev)
		gt.False(t, ok)
	})
}

func TestRefToBranch(t *testing.T) {
	gt.V(t, usecase.RefToBranchForTest("refs/heads/main")).Equal("main")
	gt.V(t, usecase.RefToBranchForTest("refs/heads/feature/x")).Equal("feature/x")
	gt.V(t, usecase.RefToBranchForTest("refs/tags/v1.0.0")).Equal("refs/tags/v1.0.0")
	gt.V(t, usecase.RefToBranchForTest("main")).Equal("main")
}
