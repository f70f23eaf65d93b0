package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
)

type UseCase interface {
	// Ingestion entry points
	SyncUserActivities(ctx context.Context, input *model.SyncInput) (int, error)
	HandleGitHubEvent(ctx context.Context, event any) error

	// Reads
	GitHubProfile(ctx context.Context, token types.GitHubToken) (*model.GitHubProfile, error)
	ListActivities(ctx context.Context, userID types.UserID, limit int) ([]*model.Activity, error)

	// Journal
	GenerateSummary(ctx context.Context, input *model.GenerateSummaryInput) (*model.Summary, error)
	ListSummaries(ctx context.Context, userID types.UserID) ([]*model.Summary, error)
	PublishSummary(ctx context.Context, userID types.UserID, id types.SummaryID) (*model.Summary, error)

	// Settings
	GetPreferences(ctx context.Context, userID types.UserID) (*model.UserSettings, error)
	UpdatePreferences(ctx context.Context, settings *model.UserSettings) (*model.UserSettings, error)
	ListRepositories(ctx context.Context, session *model.Session) ([]*model.GitHubRepository, error)
	SetRepositoryTracking(ctx context.Context, userID types.UserID, repo string, tracked bool) ([]string, error)
}
