package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/repository"
)

func (r *journalRepository) CreateSummary(ctx context.Context, summary *model.Summary) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO summaries (id, user_id, period, content, generated, published, published_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		summary.ID, summary.UserID, summary.Period, summary.Content, summary.Generated, summary.Published, summary.PublishedAt, summary.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return goerr.Wrap(repository.ErrAlreadyExists, "summary already exists",
				goerr.V("summaryID", summary.ID),
			)
		}
		return errStore(err, "failed to create summary")
	}

	return nil
}

func (r *journalRepository) GetSummary(ctx context.Context, userID types.UserID, id types.SummaryID) (*model.Summary, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, period, content, generated, published, published_at, created_at
		FROM summaries
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	)

	summary, err := scanSummary(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, goerr.Wrap(repository.ErrNotFound, "summary not found",
			goerr.V("userID", userID),
			goerr.V("summaryID", id),
		)
	} else if err != nil {
		return nil, errStore(err, "failed to get summary")
	}

	return summary, nil
}

func (r *journalRepository) ListSummaries(ctx context.Context, userID types.UserID) ([]*model.Summary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, period, content, generated, published, published_at, created_at
		FROM summaries
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, errStore(err, "failed to query summaries")
	}
	defer rows.Close()

	var summaries []*model.Summary
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, errStore(err, "failed to scan summary")
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, errStore(err, "failed to read summaries")
	}

	return summaries, nil
}

// PublishSummary flips the publication flag and sets the timestamp in one
// UPDATE. COALESCE keeps the original timestamp on republish, so the
// operation is idempotent.
func (r *journalRepository) PublishSummary(ctx context.Context, userID types.UserID, id types.SummaryID, at time.Time) (*model.Summary, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE summaries
		SET published = TRUE, published_at = COALESCE(published_at, $3)
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, period, content, generated, published, published_at, created_at`,
		id, userID, at,
	)

	summary, err := scanSummary(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, goerr.Wrap(repository.ErrNotFound, "summary not found",
			goerr.V("userID", userID),
			goerr.V("summaryID", id),
		)
	} else if err != nil {
		return nil, errStore(err, "failed to publish summary")
	}

	return summary, nil
}

func scanSummary(row pgx.Row) (*model.Summary, error) {
	var s model.Summary
	if err := row.Scan(&s.ID, &s.UserID, &s.Period, &s.Content, &s.Generated, &s.Published, &s.PublishedAt, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
