package cli

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pfd-lab/meshirec/pkg/cli/config"
	server "github.com/pfd-lab/meshirec/pkg/controller/http"
	"github.com/pfd-lab/meshirec/pkg/usecase"
	"github.com/pfd-lab/meshirec/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		addr      string
		uiTitle   string
		sourceCfg config.Source
		sentryCfg config.Sentry
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Aliases:     []string{"a"},
				Sources:     cli.EnvVars("MESHIREC_ADDR"),
				Usage:       "Listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
			&cli.StringFlag{
				Name:        "ui-title",
				Sources:     cli.EnvVars("MESHIREC_UI_TITLE"),
				Usage:       "Page title of the web UI",
				Destination: &uiTitle,
			},
		},
		sourceCfg.Flags(),
		sentryCfg.Flags(),
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the recommendation web server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)
			logger.Info("starting meshirec",
				"addr", addr,
				"source", sourceCfg,
				"sentry", sentryCfg,
			)

			if err := sentryCfg.Configure(); err != nil {
				return err
			}

			src, err := sourceCfg.Configure(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(src)
			if err := uc.Refresh(ctx); err != nil {
				return goerr.Wrap(err, "initial data load failed")
			}

			var serverOptions []server.Options
			if uiTitle != "" {
				serverOptions = append(serverOptions, server.WithUITitle(uiTitle))
			}

			httpServer := http.Server{
				Addr:              addr,
				Handler:           server.New(uc, serverOptions...),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			logger.Info("listening", "addr", addr)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(ctx)
			}
		},
	}
}
