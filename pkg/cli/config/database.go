package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/devjournal/pkg/domain/interfaces"
	"github.com/m-mizutani/devjournal/pkg/repository/postgres"
)

type Database struct {
	dsn string `masq:"secret"`
}

func (x *Database) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "database-dsn",
			Usage:       "PostgreSQL DSN (optional, falls back to in-memory store)",
			Category:    "Database",
			Sources:     cli.EnvVars("DEVJOURNAL_DATABASE_DSN"),
			Destination: &x.dsn,
		},
	}
}

func (x *Database) Enabled() bool {
	return x.dsn != ""
}

// NewRepository opens the PostgreSQL repository and runs pending migrations.
// The returned closer releases the connection pool.
func (x *Database) NewRepository(ctx context.Context) (interfaces.Repository, func(), error) {
	return postgres.New(ctx, x.dsn)
}

func (x *Database) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("DSN.len", len(x.dsn)),
	)
}
