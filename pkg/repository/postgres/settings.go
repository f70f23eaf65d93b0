package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/repository"
)

func (r *journalRepository) GetUserSettings(ctx context.Context, userID types.UserID) (*model.UserSettings, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT user_id, tracked_repositories, summary_frequency, email_digest_enabled, prompt_style, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1`,
		userID,
	)

	settings, err := scanSettings(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, goerr.Wrap(repository.ErrNotFound, "user settings not found", goerr.V("userID", userID))
	} else if err != nil {
		return nil, errStore(err, "failed to get user settings")
	}

	return settings, nil
}

func (r *journalRepository) PutUserSettings(ctx context.Context, settings *model.UserSettings) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_settings (user_id, tracked_repositories, summary_frequency, email_digest_enabled, prompt_style, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			tracked_repositories = EXCLUDED.tracked_repositories,
			summary_frequency = EXCLUDED.summary_frequency,
			email_digest_enabled = EXCLUDED.email_digest_enabled,
			prompt_style = EXCLUDED.prompt_style,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at`,
		settings.UserID, settings.TrackedRepositories, settings.SummaryFrequency, settings.EmailDigestEnabled, settings.PromptStyle, settings.CreatedAt, settings.UpdatedAt,
	)
	if err != nil {
		return errStore(err, "failed to put user settings")
	}

	return nil
}

func (r *journalRepository) ListUsersTracking(ctx context.Context, repo string) ([]*model.UserSettings, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, tracked_repositories, summary_frequency, email_digest_enabled, prompt_style, created_at, updated_at
		FROM user_settings
		WHERE $1 = ANY(tracked_repositories)`,
		repo,
	)
	if err != nil {
		return nil, errStore(err, "failed to query tracking users")
	}
	defer rows.Close()

	var trackers []*model.UserSettings
	for rows.Next() {
		settings, err := scanSettings(rows)
		if err != nil {
			return nil, errStore(err, "failed to scan user settings")
		}
		trackers = append(trackers, settings)
	}
	if err := rows.Err(); err != nil {
		return nil, errStore(err, "failed to read tracking users")
	}

	return trackers, nil
}

func scanSettings(row pgx.Row) (*model.UserSettings, error) {
	var s model.UserSettings
	if err := row.Scan(&s.UserID, &s.TrackedRepositories, &s.SummaryFrequency, &s.EmailDigestEnabled, &s.PromptStyle, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
