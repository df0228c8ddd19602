package ghapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/interfaces"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/model"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/types"
	"github.com/sujeeth-infosec/portfolio/pkg/utils/logging"
)

const (
	DefaultBaseURL = "https://api.github.com/"
	DefaultPerPage = 100
)

type Client struct {
	client  *github.Client
	perPage int
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	baseURL    string
	token      types.GitHubToken
	perPage    int
	httpClient *http.Client
}

type Option func(*config)

// WithBaseURL replaces the REST API endpoint, e.g. for GitHub Enterprise or tests
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

// WithToken authenticates requests to raise the anonymous rate limit
func WithToken(token types.GitHubToken) Option {
	return func(cfg *config) {
		cfg.token = token
	}
}

func WithPerPage(n int) Option {
	return func(cfg *config) {
		cfg.perPage = n
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = client
	}
}

func New(options ...Option) (*Client, error) {
	cfg := &config{
		baseURL:    DefaultBaseURL,
		perPage:    DefaultPerPage,
		httpClient: &http.Client{},
	}
	for _, opt := range options {
		opt(cfg)
	}

	if cfg.perPage <= 0 || cfg.perPage > 100 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "per page must be between 1 and 100", goerr.V("perPage", cfg.perPage))
	}

	baseURL, err := url.Parse(cfg.baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL",
			goerr.V("baseURL", cfg.baseURL),
			goerr.V("cause", err.Error()),
		)
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	httpClient := cfg.httpClient
	if cfg.token != "" {
		tr := httpClient.Transport
		if tr == nil {
			tr = http.DefaultTransport
		}
		httpClient = &http.Client{
			Transport: &tokenTransport{base: tr, token: cfg.token},
			Timeout:   httpClient.Timeout,
		}
	}

	client := github.NewClient(httpClient)
	client.BaseURL = baseURL

	return &Client{
		client:  client,
		perPage: cfg.perPage,
	}, nil
}

// ListUserRepositories sends exactly one request for the first page of the user's public
// repositories. Follow-up pages are never requested.
func (x *Client) ListUserRepositories(ctx context.Context, username types.GitHubUsername) ([]*model.RepositorySummary, error) {
	if username == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub username is empty")
	}

	opts := &github.RepositoryListOptions{
		ListOptions: github.ListOptions{PerPage: x.perPage},
	}

	// https://docs.github.com/en/rest/repos/repos#list-repositories-for-a-user
	repos, resp, err := x.client.Repositories.List(ctx, string(username), opts)
	if err != nil {
		var status int
		if resp != nil {
			status = resp.StatusCode
		}
		return nil, goerr.Wrap(err, "failed to list user repositories",
			goerr.V("username", username),
			goerr.V("status", status),
		)
	}

	summaries := make([]*model.RepositorySummary, 0, len(repos))
	for _, repo := range repos {
		summaries = append(summaries, toRepositorySummary(repo))
	}

	logging.From(ctx).Debug("Listed user repositories",
		slog.String("username", string(username)),
		slog.Int("count", len(summaries)),
		slog.Int("rate.remaining", resp.Rate.Remaining),
	)

	return summaries, nil
}

func toRepositorySummary(repo *github.Repository) *model.RepositorySummary {
	var description *string
	if repo.Description != nil {
		v := repo.GetDescription()
		description = &v
	}

	return &model.RepositorySummary{
		Name:        repo.GetName(),
		Description: description,
		URL:         repo.GetHTMLURL(),
		Topics:      append([]string{}, repo.Topics...),
		Homepage:    repo.GetHomepage(),
		CreatedAt:   repo.GetCreatedAt().Time,
		IsFork:      repo.GetFork(),
	}
}

type tokenTransport struct {
	base  http.RoundTripper
	token types.GitHubToken
}

func (x *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+string(x.token))
	return x.base.RoundTrip(req)
}
