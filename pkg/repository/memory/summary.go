package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/repository"
)

func (r *journalRepository) CreateSummary(ctx context.Context, summary *model.Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.summaries[summary.UserID] {
		if s.ID == summary.ID {
			return goerr.Wrap(repository.ErrAlreadyExists, "summary already exists",
				goerr.V("summaryID", summary.ID),
			)
		}
	}

	r.summaries[summary.UserID] = append(r.summaries[summary.UserID], copySummary(summary))

	return nil
}

func (r *journalRepository) GetSummary(ctx context.Context, userID types.UserID, id types.SummaryID) (*model.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.summaries[userID] {
		if s.ID == id {
			return copySummary(s), nil
		}
	}

	return nil, goerr.Wrap(repository.ErrNotFound, "summary not found",
		goerr.V("userID", userID),
		goerr.V("summaryID", id),
	)
}

func (r *journalRepository) ListSummaries(ctx context.Context, userID types.UserID) ([]*model.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.summaries[userID]
	summaries := make([]*model.Summary, 0, len(stored))
	for _, s := range stored {
		summaries = append(summaries, copySummary(s))
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})

	return summaries, nil
}

func (r *journalRepository) PublishSummary(ctx context.Context, userID types.UserID, id types.SummaryID, at time.Time) (*model.Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.summaries[userID] {
		if s.ID != id {
			continue
		}
		if !s.Published {
			s.Published = true
			publishedAt := at
			s.PublishedAt = &publishedAt
		}
		return copySummary(s), nil
	}

	return nil, goerr.Wrap(repository.ErrNotFound, "summary not found",
		goerr.V("userID", userID),
		goerr.V("summaryID", id),
	)
}

func copySummary(s *model.Summary) *model.Summary {
	c := *s
	if s.PublishedAt != nil {
		publishedAt := *s.PublishedAt
		c.PublishedAt = &publishedAt
	}
	return &c
}
