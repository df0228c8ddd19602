package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/sujeeth-infosec/portfolio/pkg/cli/config"
	"github.com/sujeeth-infosec/portfolio/pkg/controller/server"
	"github.com/sujeeth-infosec/portfolio/pkg/infra"
	"github.com/sujeeth-infosec/portfolio/pkg/usecase"
	"github.com/sujeeth-infosec/portfolio/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		github  config.GitHub
		emailJS config.EmailJS
		profile config.Profile
		sentry  config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("PORTFOLIO_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			emailJS.Flags(),
			profile.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHub", github),
				slog.Any("EmailJS", emailJS),
				slog.Any("Profile", profile),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			uc, err := newUseCase(&github, &emailJS)
			if err != nil {
				return err
			}
			s := server.New(uc, server.WithProfile(profile.Build(&github)))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}

// newUseCase wires the clients. emailJS may be nil for commands that never send mail,
// in which case no relay is configured and submissions fail with ErrSendFailed.
func newUseCase(github *config.GitHub, emailJS *config.EmailJS) (*usecase.UseCase, error) {
	ghClient, err := github.NewClient()
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: 20 * time.Second}
	infraOptions := []infra.Option{
		infra.WithHTTPClient(httpClient),
		infra.WithGitHub(ghClient),
	}
	ucOptions := []usecase.Option{
		usecase.WithGitHubUsername(github.Username()),
	}

	if emailJS != nil {
		infraOptions = append(infraOptions, infra.WithEmailRelay(emailJS.NewClient(httpClient)))
		ucOptions = append(ucOptions, usecase.WithEmailDispatchConfig(emailJS.DispatchConfig()))
	}

	return usecase.New(infra.New(infraOptions...), ucOptions...), nil
}
