package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/infra/githubapi"
)

type GitHub struct {
	webhookSecret types.WebhookSecret `masq:"secret"`
	baseURL       string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "Shared secret for GitHub webhook signature verification",
			Category:    "GitHub",
			Destination: (*string)(&x.webhookSecret),
			Sources:     cli.EnvVars("DEVJOURNAL_GITHUB_WEBHOOK_SECRET"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("DEVJOURNAL_GITHUB_BASE_URL"),
		},
	}
}

func (x GitHub) New() *githubapi.Client {
	var options []githubapi.Option
	if x.baseURL != "" {
		options = append(options, githubapi.WithBaseURL(x.baseURL))
	}
	return githubapi.New(options...)
}

func (x GitHub) WebhookSecret() types.WebhookSecret {
	return x.webhookSecret
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("WebhookSecret.len", len(x.webhookSecret)),
		slog.String("BaseURL", x.baseURL),
	)
}
