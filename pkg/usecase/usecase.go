package usecase

import (
	"sync"

	"github.com/sujeeth-infosec/portfolio/pkg/domain/model"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/types"
	"github.com/sujeeth-infosec/portfolio/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients

	username     types.GitHubUsername
	projectLimit int
	emailConfig  model.EmailDispatchConfig

	inFlight *inFlightSet
}

type Option func(*UseCase)

// WithGitHubUsername sets the account whose public repositories are listed
func WithGitHubUsername(username types.GitHubUsername) Option {
	return func(x *UseCase) {
		x.username = username
	}
}

// WithProjectLimit overrides the maximum number of project cards
func WithProjectLimit(limit int) Option {
	return func(x *UseCase) {
		x.projectLimit = limit
	}
}

func WithEmailDispatchConfig(cfg model.EmailDispatchConfig) Option {
	return func(x *UseCase) {
		x.emailConfig = cfg
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:      clients,
		projectLimit: model.MaxProjectCards,
		inFlight:     newInFlightSet(),
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

// inFlightSet is a synchronous latch keyed by submitter
type inFlightSet struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func newInFlightSet() *inFlightSet {
	return &inFlightSet{keys: make(map[string]struct{})}
}

func (x *inFlightSet) acquire(key string) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	if _, exists := x.keys[key]; exists {
		return false
	}
	x.keys[key] = struct{}{}
	return true
}

func (x *inFlightSet) release(key string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	delete(x.keys, key)
}
