package types

import "log/slog"

type (
	UserID     string
	ActivityID string
	SummaryID  string
	RequestID  string

	GitHubToken   string
	WebhookSecret string

	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
)

func (x UserID) String() string          { return string(x) }
func (x ActivityID) String() string      { return string(x) }
func (x SummaryID) String() string       { return string(x) }
func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x WebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x WebhookSecret) String() string {
	return "***********"
}
