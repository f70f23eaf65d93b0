package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
)

const defaultActivityLimit = 50

// ListActivities returns the most recent records of the user, newest first.
// A non-positive limit falls back to the default page size.
func (x *UseCase) ListActivities(ctx context.Context, userID types.UserID, limit int) ([]*model.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	activities, err := x.clients.Repository().ListActivities(ctx, userID, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list activities", goerr.V("userID", userID))
	}
	return activities, nil
}
