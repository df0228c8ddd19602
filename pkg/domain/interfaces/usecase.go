package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/sujeeth-infosec/portfolio/pkg/domain/model"
)

type UseCase interface {
	LoadProjects(ctx context.Context) *model.ProjectList
	SubmitContact(ctx context.Context, input *model.ContactFormInput) error
}
