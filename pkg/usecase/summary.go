package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/utils/logging"
)

const summaryActivityLimit = 100

// GenerateSummary materializes a journal entry from the recent activity of
// the user. The window is 24 hours for daily and 7 days for weekly, ending
// at the current time. Generating over an empty window is a validation
// failure, not an empty summary.
func (x *UseCase) GenerateSummary(ctx context.Context, input *model.GenerateSummaryInput) (*model.Summary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	activities, err := x.clients.Repository().ListActivities(ctx, input.UserID, summaryActivityLimit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list activities for summary", goerr.V("userID", input.UserID))
	}

	now := logging.CtxTime(ctx)
	since := now.Add(-periodWindow(input.Period))

	var window []*model.Activity
	for _, a := range activities {
		if a.CreatedAt.After(since) {
			window = append(window, a)
		}
	}
	if len(window) == 0 {
		return nil, goerr.Wrap(types.ErrValidationFailed, "no activity in the requested period",
			goerr.V("period", input.Period),
			goerr.V("since", since),
		)
	}

	summary := &model.Summary{
		ID:        types.NewSummaryID(),
		UserID:    input.UserID,
		Period:    input.Period,
		Content:   composeSummary(input.Period, now, window),
		Generated: true,
		CreatedAt: now,
	}
	if err := x.clients.Repository().CreateSummary(ctx, summary); err != nil {
		return nil, goerr.Wrap(err, "failed to store summary", goerr.V("summaryID", summary.ID))
	}

	return summary, nil
}

func (x *UseCase) ListSummaries(ctx context.Context, userID types.UserID) ([]*model.Summary, error) {
	summaries, err := x.clients.Repository().ListSummaries(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list summaries", goerr.V("userID", userID))
	}
	return summaries, nil
}

// PublishSummary marks a generated entry as published. Publishing twice
// keeps the first publication timestamp.
func (x *UseCase) PublishSummary(ctx context.Context, userID types.UserID, id types.SummaryID) (*model.Summary, error) {
	summary, err := x.clients.Repository().PublishSummary(ctx, userID, id, logging.CtxTime(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to publish summary", goerr.V("summaryID", id))
	}
	return summary, nil
}

func periodWindow(period types.SummaryPeriod) time.Duration {
	if period == types.PeriodWeekly {
		return 7 * 24 * time.Hour
	}
	return 24 * time.Hour
}

// composeSummary renders the journal entry as markdown: a headline with the
// record count, then the records grouped per repository in feed order.
func composeSummary(period types.SummaryPeriod, now time.Time, activities []*model.Activity) string {
	byRepo := map[string][]*model.Activity{}
	for _, a := range activities {
		byRepo[a.Repository] = append(byRepo[a.Repository], a)
	}

	repos := make([]string, 0, len(byRepo))
	for repo := range byRepo {
		repos = append(repos, repo)
	}
	sort.Strings(repos)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s journal (%s)\n\n", periodLabel(period), now.Format("2006-01-02"))
	fmt.Fprintf(&b, "%d activities across %d repositories.\n", len(activities), len(repos))

	for _, repo := range repos {
		fmt.Fprintf(&b, "\n## %s\n\n", repo)
		for _, a := range byRepo[repo] {
			fmt.Fprintf(&b, "- %s", a.Title)
			if a.Description != "" && a.Description != a.Title {
				fmt.Fprintf(&b, ": %s", firstLine(a.Description))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func periodLabel(period types.SummaryPeriod) string {
	if period == types.PeriodWeekly {
		return "Weekly"
	}
	return "Daily"
}
