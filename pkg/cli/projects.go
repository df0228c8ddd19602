package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/gots/slice"
	"github.com/sujeeth-infosec/portfolio/pkg/cli/config"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/interfaces"
	"github.com/sujeeth-infosec/portfolio/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func projectsCommand() *cli.Command {
	var (
		github config.GitHub
		sentry config.Sentry
	)

	return &cli.Command{
		Name:    "projects",
		Aliases: []string{"p"},
		Usage:   "Fetch the project cards once and print them as JSON",
		Flags: slice.Flatten(
			github.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Debug("starting projects", slog.Any("GitHub", github))

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			uc, err := newUseCase(&github, nil)
			if err != nil {
				return err
			}

			return runProjects(ctx, uc, os.Stdout)
		},
	}
}

func runProjects(ctx context.Context, uc interfaces.UseCase, w io.Writer) error {
	list := uc.LoadProjects(ctx)
	if err := requireLoadedProjects(list); err != nil {
		return err
	}
	return writeJSON(w, list)
}
