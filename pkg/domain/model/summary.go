package model

import (
	"time"

	"github.com/m-mizutani/devjournal/pkg/domain/types"
)

// Summary is a materialized journal entry generated from a time-windowed
// slice of activity records. PublishedAt is non-nil if and only if Published
// is true.
type Summary struct {
	ID          types.SummaryID     `json:"id"`
	UserID      types.UserID        `json:"user_id"`
	Period      types.SummaryPeriod `json:"period"`
	Content     string              `json:"content"`
	Generated   bool                `json:"generated"`
	Published   bool                `json:"published"`
	PublishedAt *time.Time          `json:"published_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}
