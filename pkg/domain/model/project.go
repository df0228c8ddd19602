package model

import "strings"

const (
	NoDescriptionPlaceholder = "No description available"
	NoTopicPlaceholder       = "N/A"

	ProjectsLoadingMessage = "Loading projects..."
	ProjectsFailedMessage  = "Failed to load projects. Please try again later."
	ProjectsEmptyMessage   = "No projects found."
)

// ProjectCard is the display projection of a RepositorySummary
type ProjectCard struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GitHubURL    string   `json:"github"`
	LiveURL      string   `json:"live,omitempty"`
}

var titleReplacer = strings.NewReplacer("-", " ", "_", " ")

// NewProjectCard projects a repository into a card. Separators in the name become
// spaces, a missing description and an empty topic list are replaced by placeholders.
func NewProjectCard(repo *RepositorySummary) *ProjectCard {
	card := &ProjectCard{
		Title:        titleReplacer.Replace(repo.Name),
		Description:  NoDescriptionPlaceholder,
		Technologies: []string{NoTopicPlaceholder},
		GitHubURL:    repo.URL,
		LiveURL:      repo.Homepage,
	}

	if repo.Description != nil && *repo.Description != "" {
		card.Description = *repo.Description
	}
	if len(repo.Topics) > 0 {
		card.Technologies = append([]string{}, repo.Topics...)
	}

	return card
}

type ProjectListStatus string

const (
	ProjectListLoading ProjectListStatus = "loading"
	ProjectListSuccess ProjectListStatus = "success"
	ProjectListError   ProjectListStatus = "error"
)

// ProjectList is the render state of the project grid
type ProjectList struct {
	Status  ProjectListStatus `json:"status"`
	Message string            `json:"message,omitempty"`
	Cards   []*ProjectCard    `json:"projects"`
}

func NewLoadingProjectList() *ProjectList {
	return &ProjectList{
		Status:  ProjectListLoading,
		Message: ProjectsLoadingMessage,
		Cards:   []*ProjectCard{},
	}
}

func NewFailedProjectList() *ProjectList {
	return &ProjectList{
		Status:  ProjectListError,
		Message: ProjectsFailedMessage,
		Cards:   []*ProjectCard{},
	}
}

// NewProjectList builds a success state from already selected repositories
func NewProjectList(repos []*RepositorySummary) *ProjectList {
	list := &ProjectList{
		Status: ProjectListSuccess,
		Cards:  make([]*ProjectCard, 0, len(repos)),
	}
	for _, repo := range repos {
		list.Cards = append(list.Cards, NewProjectCard(repo))
	}
	if len(list.Cards) == 0 {
		list.Message = ProjectsEmptyMessage
	}
	return list
}

func (x *ProjectList) Loading() bool { return x.Status == ProjectListLoading }
func (x *ProjectList) Failed() bool  { return x.Status == ProjectListError }
func (x *ProjectList) Empty() bool {
	return x.Status == ProjectListSuccess && len(x.Cards) == 0
}
