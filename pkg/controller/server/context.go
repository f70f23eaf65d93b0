package server

import (
	"context"

	"github.com/m-mizutani/devjournal/pkg/domain/model"
)

type ctxSessionKey struct{}

func withSession(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, ctxSessionKey{}, session)
}

// sessionFrom returns the verified session of the request. It is set by the
// authorize middleware for every handler mounted under /api.
func sessionFrom(ctx context.Context) (*model.Session, bool) {
	session, ok := ctx.Value(ctxSessionKey{}).(*model.Session)
	return session, ok
}
