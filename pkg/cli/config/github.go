package config

import (
	"log/slog"

	"github.com/sujeeth-infosec/portfolio/pkg/domain/types"
	"github.com/sujeeth-infosec/portfolio/pkg/infra/ghapi"
	"github.com/urfave/cli/v3"
)

const DefaultGitHubUsername = "Sujeeth-infosec"

type GitHub struct {
	username types.GitHubUsername
	apiURL   string
	token    types.GitHubToken `masq:"secret"`
	perPage  int64
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-username",
			Usage:       "GitHub account whose public repositories are shown as projects",
			Category:    "GitHub",
			Value:       DefaultGitHubUsername,
			Destination: (*string)(&x.username),
			Sources:     cli.EnvVars("PORTFOLIO_GITHUB_USERNAME"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Category:    "GitHub",
			Value:       ghapi.DefaultBaseURL,
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("PORTFOLIO_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token (optional, raises the API rate limit)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("PORTFOLIO_GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-per-page",
			Usage:       "Number of repositories requested in the single listing call (1-100)",
			Category:    "GitHub",
			Value:       ghapi.DefaultPerPage,
			Destination: &x.perPage,
			Sources:     cli.EnvVars("PORTFOLIO_GITHUB_PER_PAGE"),
		},
	}
}

func (x *GitHub) Username() types.GitHubUsername {
	return x.username
}

// ProfileURL is the public profile page of the configured account
func (x *GitHub) ProfileURL() string {
	return "https://github.com/" + string(x.username)
}

func (x *GitHub) NewClient() (*ghapi.Client, error) {
	options := []ghapi.Option{
		ghapi.WithPerPage(int(x.perPage)),
	}
	if x.apiURL != "" {
		options = append(options, ghapi.WithBaseURL(x.apiURL))
	}
	if x.token != "" {
		options = append(options, ghapi.WithToken(x.token))
	}
	return ghapi.New(options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Username", x.username),
		slog.Any("APIURL", x.apiURL),
		slog.Int("Token.len", len(x.token)),
		slog.Int64("PerPage", x.perPage),
	)
}
