package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
)

// InsertActivities persists candidates whose (user_id, url) pair is not yet
// stored. The check and the write happen in one statement per candidate via
// ON CONFLICT DO NOTHING, so concurrent syncs for the same user cannot
// produce duplicates.
func (r *journalRepository) InsertActivities(ctx context.Context, userID types.UserID, activities []*model.Activity) ([]*model.Activity, error) {
	if len(activities) == 0 {
		return nil, nil
	}

	batch := &pgx.Batch{}
	for _, a := range activities {
		batch.Queue(`
			INSERT INTO activities (id, user_id, kind, repository, title, description, url, sha, branch, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT ON CONSTRAINT activities_user_url_unique DO NOTHING
			RETURNING id`,
			a.ID, userID, a.Kind, a.Repository, a.Title, a.Description, a.URL, a.SHA, a.Branch, a.CreatedAt,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	var inserted []*model.Activity
	for _, a := range activities {
		var id types.ActivityID
		err := results.QueryRow().Scan(&id)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			// Conflict: the URL is already stored for this user.
			continue
		case err != nil:
			return nil, errStore(err, "failed to insert activity")
		}

		record := *a
		record.UserID = userID
		inserted = append(inserted, &record)
	}

	return inserted, nil
}

func (r *journalRepository) ListActivities(ctx context.Context, userID types.UserID, limit int) ([]*model.Activity, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, kind, repository, title, description, url, sha, branch, created_at
		FROM activities
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, errStore(err, "failed to query activities")
	}
	defer rows.Close()

	var activities []*model.Activity
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Kind, &a.Repository, &a.Title, &a.Description, &a.URL, &a.SHA, &a.Branch, &a.CreatedAt); err != nil {
			return nil, errStore(err, "failed to scan activity")
		}
		activities = append(activities, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, errStore(err, "failed to read activities")
	}

	return activities, nil
}
