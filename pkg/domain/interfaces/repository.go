package interfaces

import (
	"context"
	"time"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
)

//go:generate moq -out ../mock/repository.go -pkg mock . Repository

// Repository manages activity records, tracking preferences and journal
// summaries.
type Repository interface {
	// Activity operations. InsertActivities persists only candidates whose
	// (user, URL) pair is not stored yet, in one conditional bulk operation,
	// and returns the subset actually persisted. It never updates or removes
	// existing rows.
	InsertActivities(ctx context.Context, userID types.UserID, activities []*model.Activity) ([]*model.Activity, error)
	ListActivities(ctx context.Context, userID types.UserID, limit int) ([]*model.Activity, error)

	// Settings operations
	GetUserSettings(ctx context.Context, userID types.UserID) (*model.UserSettings, error)
	PutUserSettings(ctx context.Context, settings *model.UserSettings) error
	ListUsersTracking(ctx context.Context, repo string) ([]*model.UserSettings, error)

	// Summary operations. PublishSummary sets the publication flag and
	// timestamp in one atomic update and is idempotent for already-published
	// records.
	CreateSummary(ctx context.Context, summary *model.Summary) error
	GetSummary(ctx context.Context, userID types.UserID, id types.SummaryID) (*model.Summary, error)
	ListSummaries(ctx context.Context, userID types.UserID) ([]*model.Summary, error)
	PublishSummary(ctx context.Context, userID types.UserID, id types.SummaryID, at time.Time) (*model.Summary, error)
}
