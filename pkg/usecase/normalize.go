package usecase

import (
	"fmt"
	"strings"

	"github.com/google/go-github/v53/github"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
)

const maxCommentLength = 100

// normalizeFeedEvent maps one event from the GitHub events feed into a
// canonical activity record. The second return value is false for event
// categories the journal does not record; the caller decides how to log
// them. The mapping is deterministic and has no side effects.
func normalizeFeedEvent(ev *github.Event) (*model.Activity, bool) {
	repo := ev.GetRepo().GetName()
	if repo == "" {
		return nil, false
	}

	payload, err := ev.ParsePayload()
	if err != nil {
		return nil, false
	}

	activity := &model.Activity{
		ID:         types.NewActivityID(),
		Repository: repo,
		CreatedAt:  ev.GetCreatedAt().Time,
	}

	switch p := payload.(type) {
	case *github.PushEvent:
		activity.Kind = types.ActivityCommit
		activity.Title = fmt.Sprintf("Pushed %d commits", len(p.Commits))
		activity.Description = joinCommitMessages(p.Commits)
		activity.URL = fmt.Sprintf("https://github.com/%s/commit/%s", repo, p.GetHead())
		activity.SHA = p.GetHead()
		activity.Branch = refToBranch(p.GetRef())

	case *github.PullRequestEvent:
		activity.Kind = types.ActivityPullRequest
		if p.GetAction() == "opened" {
			activity.Title = "Opened PR"
		} else {
			activity.Title = "Updated PR"
		}
		activity.Description = p.GetPullRequest().GetTitle()
		activity.URL = p.GetPullRequest().GetHTMLURL()
		activity.Branch = p.GetPullRequest().GetHead().GetRef()

	case *github.IssuesEvent:
		activity.Kind = types.ActivityIssue
		if p.GetAction() == "opened" {
			activity.Title = "Opened issue"
		} else {
			activity.Title = "Updated issue"
		}
		activity.Description = p.GetIssue().GetTitle()
		activity.URL = p.GetIssue().GetHTMLURL()

	case *github.WatchEvent:
		activity.Kind = types.ActivityStar
		activity.Title = "Starred repository"
		activity.Description = repo
		activity.URL = "https://github.com/" + repo

	case *github.IssueCommentEvent:
		activity.Kind = types.ActivityComment
		activity.Title = "Commented on issue"
		activity.Description = truncate(p.GetComment().GetBody(), maxCommentLength)
		activity.URL = p.GetComment().GetHTMLURL()

	default:
		// Other event categories are not journaled. Returning false here
		// is the single place where new upstream categories surface.
		return nil, false
	}

	return activity, true
}

func joinCommitMessages(commits []*github.HeadCommit) string {
	messages := make([]string, 0, len(commits))
	for _, c := range commits {
		messages = append(messages, c.GetMessage())
	}
	return strings.Join(messages, ", ")
}

func refToBranch(v string) string {
	if ref := strings.SplitN(v, "/", 3); len(ref) == 3 && ref[0] == "refs" && ref[1] == "heads" {
		return ref[2]
	}
	return v
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
