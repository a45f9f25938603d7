package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

type GitHubOAuth struct {
	clientID     string
	clientSecret string `masq:"secret"`
}

func (x *GitHubOAuth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-client-id",
			Usage:       "GitHub OAuth app client ID",
			Category:    "GitHub OAuth",
			Sources:     cli.EnvVars("CIRELAY_GITHUB_CLIENT_ID"),
			Destination: &x.clientID,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-client-secret",
			Usage:       "GitHub OAuth app client secret",
			Category:    "GitHub OAuth",
			Sources:     cli.EnvVars("CIRELAY_GITHUB_CLIENT_SECRET"),
			Destination: &x.clientSecret,
			Required:    true,
		},
	}
}

func (x *GitHubOAuth) ClientID() string     { return x.clientID }
func (x *GitHubOAuth) ClientSecret() string { return x.clientSecret }

func (x GitHubOAuth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("clientID", x.clientID),
		slog.String("clientSecret", "***********"),
	)
}
