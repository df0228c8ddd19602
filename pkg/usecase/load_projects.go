package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/model"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/types"
	"github.com/sujeeth-infosec/portfolio/pkg/utils/errutil"
	"github.com/sujeeth-infosec/portfolio/pkg/utils/logging"
)

// LoadProjects fetches the configured user's public repositories once and returns the
// render state of the project grid. Failures are reported and turned into the error
// state; they are never returned to the caller.
func (x *UseCase) LoadProjects(ctx context.Context) *model.ProjectList {
	repos, err := x.fetchRecentRepositories(ctx)
	if err != nil {
		errutil.HandleError(ctx, "Error fetching projects", err)
		return model.NewFailedProjectList()
	}

	return model.NewProjectList(repos)
}

func (x *UseCase) fetchRecentRepositories(ctx context.Context) ([]*model.RepositorySummary, error) {
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrFetchFailed, "GitHub client is not configured")
	}

	logger := logging.From(ctx)

	repos, err := x.clients.GitHub().ListUserRepositories(ctx, x.username)
	if err != nil {
		return nil, goerr.Wrap(errors.Join(types.ErrFetchFailed, err), "failed to list repositories",
			goerr.V("username", x.username),
		)
	}

	for _, repo := range repos {
		if repo != nil && repo.IsFork {
			logger.Debug("Skipping forked repository", slog.String("repo", repo.Name))
		}
	}

	selected := model.SelectRecentRepositories(repos, x.projectLimit)

	logger.Info("Loaded projects",
		slog.String("username", string(x.username)),
		slog.Int("total_repos", len(repos)),
		slog.Int("selected", len(selected)),
	)

	return selected, nil
}
