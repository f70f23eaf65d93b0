package model

import (
	"time"

	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Activity is one observed unit of developer action. Records are created only
// by the ingestion pipeline and are immutable afterwards. The pair
// (UserID, URL) is unique per user.
type Activity struct {
	ID          types.ActivityID   `json:"id"`
	UserID      types.UserID       `json:"user_id"`
	Kind        types.ActivityKind `json:"kind"`
	Repository  string             `json:"repository"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	URL         string             `json:"url"`
	SHA         string             `json:"sha,omitempty"`
	Branch      string             `json:"branch,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

func (x *Activity) Validate() error {
	if err := x.Kind.Validate(); err != nil {
		return err
	}
	if x.UserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user ID is empty")
	}
	if x.Repository == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository is empty")
	}
	if x.URL == "" {
		return goerr.Wrap(types.ErrValidationFailed, "source URL is empty")
	}
	return nil
}

// ActivityRawRecord is the flattened shape appended to the analytics sink.
type ActivityRawRecord struct {
	Activity
	Timestamp int64 `json:"timestamp"`
}
