package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/utils/logging"
)

// storeActivities is the deduplicating store writer shared by both ingestion
// entry points. The repository persists only candidates whose source URL is
// not stored yet for the user; the returned count covers exactly that
// subset. Newly persisted records are also appended to the analytics sink
// when one is configured; sink failures do not affect the ingestion result.
func (x *UseCase) storeActivities(ctx context.Context, userID types.UserID, candidates []*model.Activity) (int, error) {
	if len(candidates) == 0 {
		return 0, nil
	}

	now := logging.CtxTime(ctx)
	for _, c := range candidates {
		c.UserID = userID
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		if err := c.Validate(); err != nil {
			return 0, goerr.Wrap(err, "invalid activity candidate")
		}
	}

	inserted, err := x.clients.Repository().InsertActivities(ctx, userID, candidates)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to store activities", goerr.V("userID", userID))
	}

	if len(inserted) > 0 {
		if err := x.exportActivities(ctx, inserted); err != nil {
			logging.From(ctx).Warn("failed to export activities to analytics sink",
				slog.Any("error", err),
			)
		}
	}

	return len(inserted), nil
}
