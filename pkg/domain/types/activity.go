package types

import "github.com/m-mizutani/goerr/v2"

// ActivityKind is the canonical category of one developer action.
type ActivityKind string

const (
	ActivityCommit      ActivityKind = "commit"
	ActivityPullRequest ActivityKind = "pull_request"
	ActivityIssue       ActivityKind = "issue"
	ActivityStar        ActivityKind = "star"
	ActivityComment     ActivityKind = "comment"
)

func (x ActivityKind) Validate() error {
	switch x {
	case ActivityCommit, ActivityPullRequest, ActivityIssue, ActivityStar, ActivityComment:
		return nil
	}
	return goerr.Wrap(ErrValidationFailed, "unknown activity kind", goerr.V("kind", string(x)))
}

// SummaryPeriod is the time window of a journal summary.
type SummaryPeriod string

const (
	PeriodDaily  SummaryPeriod = "daily"
	PeriodWeekly SummaryPeriod = "weekly"
)

func (x SummaryPeriod) Validate() error {
	switch x {
	case PeriodDaily, PeriodWeekly:
		return nil
	}
	return goerr.Wrap(ErrValidationFailed, "invalid summary period", goerr.V("period", string(x)))
}
