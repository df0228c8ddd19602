package infra

import (
	"net/http"

	"github.com/sujeeth-infosec/portfolio/pkg/domain/interfaces"
)

type Clients struct {
	github     interfaces.GitHub
	emailRelay interfaces.EmailRelay
	httpClient HTTPClient
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) EmailRelay() interfaces.EmailRelay {
	return x.emailRelay
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithEmailRelay(client interfaces.EmailRelay) Option {
	return func(x *Clients) {
		x.emailRelay = client
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}
