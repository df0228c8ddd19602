package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub EmailRelay

import (
	"context"

	"github.com/sujeeth-infosec/portfolio/pkg/domain/model"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/types"
)

// GitHub reads public metadata from the source hosting provider
type GitHub interface {
	ListUserRepositories(ctx context.Context, username types.GitHubUsername) ([]*model.RepositorySummary, error)
}

// EmailRelay delivers a contact submission through a transactional email service
type EmailRelay interface {
	Send(ctx context.Context, input *SendEmailInput) error
}

type SendEmailInput struct {
	Config *model.EmailDispatchConfig
	Params map[string]string
}
