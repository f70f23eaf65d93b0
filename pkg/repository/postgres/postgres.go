package postgres

import (
	"context"
	"embed"
	"errors"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/devjournal/pkg/domain/interfaces"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

type journalRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.Repository = (*journalRepository)(nil)

// New connects to PostgreSQL, applies pending migrations and returns the
// repository. The pool is owned by the caller's process lifetime; Close must
// be called on shutdown.
func New(ctx context.Context, dsn string) (interfaces.Repository, func(), error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, goerr.Wrap(types.ErrStoreUnavailable, "failed to create connection pool", goerr.V("cause", err))
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, goerr.Wrap(types.ErrStoreUnavailable, "failed to reach database", goerr.V("cause", err))
	}

	if err := migrateUp(dsn); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return &journalRepository{pool: pool}, pool.Close, nil
}

func migrateUp(dsn string) error {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return goerr.Wrap(err, "failed to load embedded migrations")
	}

	// The migrate pgx/v5 driver registers itself under the pgx5 scheme.
	url := strings.Replace(dsn, "postgres://", "pgx5://", 1)
	m, err := migrate.NewWithSourceInstance("iofs", src, url)
	if err != nil {
		return goerr.Wrap(types.ErrStoreUnavailable, "failed to prepare migration", goerr.V("cause", err))
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return goerr.Wrap(types.ErrStoreUnavailable, "failed to apply migration", goerr.V("cause", err))
	}

	return nil
}

func errStore(err error, msg string) error {
	return goerr.Wrap(types.ErrStoreUnavailable, msg, goerr.V("cause", err))
}
