package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/utils/logging"
)

// HandleGitHubEvent fans one webhook delivery out to every user tracking the
// event's repository. Candidates go through the same deduplicating writer
// as the pull-based sync, so redelivering the identical payload stores
// nothing new. A store failure for one tracker is logged and does not stop
// the remaining trackers.
func (x *UseCase) HandleGitHubEvent(ctx context.Context, event any) error {
	repo, candidates := webhookCandidates(event)
	if repo == "" || len(candidates) == 0 {
		logging.From(ctx).Info("webhook event without journal mapping",
			slog.String("type", fmt.Sprintf("%T", event)),
		)
		return nil
	}

	trackers, err := x.clients.Repository().ListUsersTracking(ctx, repo)
	if err != nil {
		return goerr.Wrap(err, "failed to find tracking users", goerr.V("repository", repo))
	}

	for _, settings := range trackers {
		cloned := cloneCandidates(candidates)
		if _, err := x.storeActivities(ctx, settings.UserID, cloned); err != nil {
			logging.From(ctx).Error("failed to store webhook activities",
				slog.Any("userID", settings.UserID),
				slog.String("repository", repo),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// webhookCandidates builds activity candidates from a parsed webhook event.
// The returned repository full name selects the tracking users; an empty
// name means the event category is not journaled.
func webhookCandidates(event any) (string, []*model.Activity) {
	switch ev := event.(type) {
	case *github.PushEvent:
		repo := ev.GetRepo().GetFullName()
		branch := refToBranch(ev.GetRef())
		var candidates []*model.Activity
		for _, commit := range ev.Commits {
			candidates = append(candidates, &model.Activity{
				ID:          types.NewActivityID(),
				Kind:        types.ActivityCommit,
				Repository:  repo,
				Title:       "Pushed commit: " + firstLine(commit.GetMessage()),
				Description: commit.GetMessage(),
				URL:         commit.GetURL(),
				SHA:         commit.GetID(),
				Branch:      branch,
			})
		}
		return repo, candidates

	case *github.PullRequestEvent:
		pr := ev.GetPullRequest()
		return ev.GetRepo().GetFullName(), []*model.Activity{{
			ID:          types.NewActivityID(),
			Kind:        types.ActivityPullRequest,
			Repository:  ev.GetRepo().GetFullName(),
			Title:       titleCase(ev.GetAction()) + " pull request",
			Description: pr.GetTitle(),
			URL:         pr.GetHTMLURL(),
			Branch:      pr.GetHead().GetRef(),
		}}

	case *github.IssuesEvent:
		issue := ev.GetIssue()
		return ev.GetRepo().GetFullName(), []*model.Activity{{
			ID:          types.NewActivityID(),
			Kind:        types.ActivityIssue,
			Repository:  ev.GetRepo().GetFullName(),
			Title:       titleCase(ev.GetAction()) + " issue",
			Description: issue.GetTitle(),
			URL:         issue.GetHTMLURL(),
		}}

	case *github.IssueCommentEvent:
		comment := ev.GetComment()
		return ev.GetRepo().GetFullName(), []*model.Activity{{
			ID:          types.NewActivityID(),
			Kind:        types.ActivityComment,
			Repository:  ev.GetRepo().GetFullName(),
			Title:       titleCase(ev.GetAction()) + " comment on issue",
			Description: truncate(comment.GetBody(), maxWebhookCommentLength),
			URL:         comment.GetHTMLURL(),
		}}

	case *github.CreateEvent:
		// Tag and repository creations are not journaled, only branches.
		if ev.GetRefType() != "branch" {
			return "", nil
		}
		return ev.GetRepo().GetFullName(), []*model.Activity{{
			ID:          types.NewActivityID(),
			Kind:        types.ActivityCommit,
			Repository:  ev.GetRepo().GetFullName(),
			Title:       "Created branch: " + ev.GetRef(),
			Description: "New branch created: " + ev.GetRef(),
			URL:         ev.GetRepo().GetHTMLURL() + "/tree/" + ev.GetRef(),
			Branch:      ev.GetRef(),
		}}
	}

	return "", nil
}

const maxWebhookCommentLength = 200

// cloneCandidates gives each tracking user its own record set with fresh
// IDs, since the repository takes ownership of the inserted pointers.
func cloneCandidates(candidates []*model.Activity) []*model.Activity {
	cloned := make([]*model.Activity, len(candidates))
	for i, c := range candidates {
		copied := *c
		copied.ID = types.NewActivityID()
		cloned[i] = &copied
	}
	return cloned
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func titleCase(action string) string {
	if action == "" {
		return "Updated"
	}
	return strings.ToUpper(action[:1]) + action[1:]
}
