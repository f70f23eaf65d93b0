package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"

	"github.com/m-mizutani/devjournal/pkg/cli/config"
	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/infra"
	"github.com/m-mizutani/devjournal/pkg/infra/session"
	"github.com/m-mizutani/devjournal/pkg/usecase"
	"github.com/m-mizutani/devjournal/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func syncCommand() *cli.Command {
	var (
		token string

		githubCfg config.GitHub
		database  config.Database
		bigQuery  config.BigQuery
	)

	return &cli.Command{
		Name:    "sync",
		Aliases: []string{"sy"},
		Usage:   "Fetch recent GitHub activity once and store it",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "github-token",
				Usage:       "GitHub access token of the user to sync",
				Sources:     cli.EnvVars("DEVJOURNAL_GITHUB_TOKEN"),
				Destination: &token,
				Required:    true,
			},
		}, githubCfg.Flags(), database.Flags(), bigQuery.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			ghClient := githubCfg.New()

			infraOptions := []infra.Option{
				infra.WithGitHub(ghClient),
			}

			if database.Enabled() {
				repo, closer, err := database.NewRepository(ctx)
				if err != nil {
					return err
				}
				defer closer()
				infraOptions = append(infraOptions, infra.WithRepository(repo))
			} else {
				logging.Default().Warn("database is not configured, results are not persisted across runs")
			}

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			clients := infra.New(infraOptions...)

			verified, err := session.New(ghClient).Verify(ctx, types.GitHubToken(token))
			if err != nil {
				return err
			}

			uc := usecase.New(clients)
			n, err := uc.SyncUserActivities(ctx, &model.SyncInput{
				UserID: verified.UserID,
				Login:  verified.Login,
				Token:  verified.Token,
			})
			if err != nil {
				return err
			}

			logging.From(ctx).Info("sync completed",
				slog.String("login", verified.Login),
				slog.Int("synced", n),
			)
			return nil
		},
	}
}
