package memory

import (
	"context"
	"sort"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
)

func (r *journalRepository) InsertActivities(ctx context.Context, userID types.UserID, activities []*model.Activity) ([]*model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen, ok := r.urls[userID]
	if !ok {
		seen = make(map[string]struct{})
		r.urls[userID] = seen
	}

	var inserted []*model.Activity
	for _, activity := range activities {
		if _, exists := seen[activity.URL]; exists {
			continue
		}
		seen[activity.URL] = struct{}{}

		record := copyActivity(activity)
		record.UserID = userID
		r.activities[userID] = append(r.activities[userID], record)
		inserted = append(inserted, copyActivity(record))
	}

	return inserted, nil
}

func (r *journalRepository) ListActivities(ctx context.Context, userID types.UserID, limit int) ([]*model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.activities[userID]
	activities := make([]*model.Activity, 0, len(stored))
	for _, a := range stored {
		activities = append(activities, copyActivity(a))
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})

	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}

	return activities, nil
}

func copyActivity(a *model.Activity) *model.Activity {
	c := *a
	return &c
}
