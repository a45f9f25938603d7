package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cirelay/cirelay/pkg/cli/config"
	"github.com/cirelay/cirelay/pkg/controller/server"
	"github.com/cirelay/cirelay/pkg/infra"
	"github.com/cirelay/cirelay/pkg/repository/memory"
	"github.com/cirelay/cirelay/pkg/usecase"
	"github.com/cirelay/cirelay/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr        string
		concurrency int64

		vaultCfg  config.Vault
		firestore config.Firestore
		oauth     config.GitHubOAuth
		session   config.Session
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("CIRELAY_ADDR"),
			Destination: &addr,
		},
		&cli.Int64Flag{
			Name:        "concurrency",
			Usage:       "Max parallel workflow-run fetches per request",
			Value:       8,
			Sources:     cli.EnvVars("CIRELAY_CONCURRENCY"),
			Destination: &concurrency,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			vaultCfg.Flags(),
			firestore.Flags(),
			oauth.Flags(),
			session.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("Concurrency", concurrency),
				slog.Any("Vault", vaultCfg),
				slog.Any("Firestore", firestore),
				slog.Any("GitHubOAuth", oauth),
				slog.Any("Session", session),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			tokenVault, err := vaultCfg.New()
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithVault(tokenVault),
			}

			if firestore.Enabled() {
				registry, err := firestore.NewRegistry(ctx)
				if err != nil {
					return err
				}
				infraOptions = append(infraOptions, infra.WithRepoRegistry(registry))
			} else {
				logging.Default().Warn("firestore is not configured, repository records are kept in memory")
				infraOptions = append(infraOptions, infra.WithRepoRegistry(memory.New()))
			}

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients, usecase.WithConcurrency(int(concurrency)))
			s := server.New(uc,
				server.WithSessionSecret(session.Secret()),
				server.WithSessionTTL(session.TTLSeconds()),
				server.WithGitHubOAuth(oauth.ClientID(), oauth.ClientSecret()),
			)

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
