package model

import (
	"time"

	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// UserSettings holds the per-user tracking preference and journal
// preferences. An empty TrackedRepositories list means "sync everything
// visible to the credential", not "sync nothing".
type UserSettings struct {
	UserID              types.UserID        `json:"user_id"`
	TrackedRepositories []string            `json:"tracked_repositories"`
	SummaryFrequency    types.SummaryPeriod `json:"summary_frequency"`
	EmailDigestEnabled  bool                `json:"email_digest_enabled"`
	PromptStyle         string              `json:"prompt_style"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

var validPromptStyles = map[string]struct{}{
	"developer":    {},
	"casual":       {},
	"professional": {},
}

func (x *UserSettings) Validate() error {
	if x.UserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user ID is empty")
	}
	if err := x.SummaryFrequency.Validate(); err != nil {
		return goerr.Wrap(err, "invalid summary frequency")
	}
	if _, ok := validPromptStyles[x.PromptStyle]; !ok {
		return goerr.Wrap(types.ErrValidationFailed, "invalid prompt style", goerr.V("style", x.PromptStyle))
	}
	return nil
}

// DefaultSettings returns the settings applied to a user who has never saved
// any preference.
func DefaultSettings(userID types.UserID) *UserSettings {
	return &UserSettings{
		UserID:              userID,
		TrackedRepositories: []string{},
		SummaryFrequency:    types.PeriodWeekly,
		PromptStyle:         "developer",
	}
}

// Tracks reports whether the given repository full name is in the tracked
// list.
func (x *UserSettings) Tracks(repo string) bool {
	for _, r := range x.TrackedRepositories {
		if r == repo {
			return true
		}
	}
	return false
}
