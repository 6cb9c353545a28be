package main

import (
	"context"
	"log/slog"
	"net"

	"github.com/spf13/cobra"

	"github.com/sapujagad-id/botpanel"
	"github.com/sapujagad-id/botpanel/middlewares"
	"github.com/sapujagad-id/botpanel/panel/handlers"
	"github.com/sapujagad-id/botpanel/pkg/cookie"
	"github.com/sapujagad-id/botpanel/pkg/health"
	"github.com/sapujagad-id/botpanel/pkg/logger"
)

type serveOptions struct {
	requireBackend bool
	onListen       func(net.Addr)
}

func newServeCmd(g *globals) *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the admin panel HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, g, opts)
		},
	}
	cmd.Flags().StringVar(&g.addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	cmd.Flags().BoolVar(&opts.requireBackend, "require-backend", false, "refuse to start when the backend does not answer")
	return cmd
}

func runServe(cmd *cobra.Command, g *globals, opts serveOptions) error {
	cfg, err := g.config()
	if err != nil {
		return err
	}
	log, err := g.logger(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	log = log.With("component", "botpanel")

	api, err := newClient(cfg, log)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	checks := health.Checks{"backend": api.Ping}
	if _, err := health.Run(ctx, checks, health.WithTimeout(cfg.BackendTimeout), health.WithLogger(log)); err != nil {
		if opts.requireBackend {
			return err
		}
		log.Warn("backend not reachable, starting anyway", slog.String("backend", api.BaseURL()))
	}

	app := botpanel.New(
		botpanel.WithCustomLogger(log),
		botpanel.WithCookieOptions(
			cookie.WithSecret(cfg.CookieSecret),
			cookie.WithSecure(cfg.CookieSecure),
		),
		botpanel.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger(middlewares.WithSkipPrefixes("/health")),
			middlewares.Recover(),
		),
		botpanel.WithErrorHandler(handlers.ErrorHandler),
		botpanel.WithNotFoundHandler(handlers.NotFound),
		botpanel.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		botpanel.WithHealthChecks(
			botpanel.WithReadinessTimeout(cfg.BackendTimeout),
			botpanel.WithReadinessCheck("backend", api.Ping),
		),
		botpanel.WithHandlers(
			handlers.NewBots(api, formOptions(cfg)),
			handlers.NewSlug(api),
			handlers.NewUsers(api, cfg.AccessLevelMax),
		),
	)

	runOpts := []botpanel.RunOption{
		botpanel.Logger(log),
		botpanel.WithContext(ctx),
		botpanel.ShutdownTimeout(cfg.ShutdownTimeout),
		botpanel.ShutdownHook(logger.Flush),
	}
	if opts.onListen != nil {
		runOpts = append(runOpts, botpanel.OnListen(opts.onListen))
	}
	return app.Run(cfg.Addr, runOpts...)
}
