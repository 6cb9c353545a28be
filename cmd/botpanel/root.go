package main

import (
	"fmt"
	"io"
	"log/slog"
	"maps"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sapujagad-id/botpanel/middlewares"
	"github.com/sapujagad-id/botpanel/panel/config"
	"github.com/sapujagad-id/botpanel/panel/requests"
	"github.com/sapujagad-id/botpanel/pkg/botapi"
	"github.com/sapujagad-id/botpanel/pkg/logger"
)

// globals carries the environment and the flags shared by all commands.
type globals struct {
	environ    map[string]string
	backendURL string
	addr       string
}

func newRootCmd(environ map[string]string) *cobra.Command {
	g := &globals{environ: environ}

	root := &cobra.Command{
		Use:           "botpanel",
		Short:         "Admin panel for the chatbot backend",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.backendURL, "backend-url", "", "chatbot backend base URL (overrides BACKEND_URL)")

	root.AddCommand(
		newServeCmd(g),
		newBotCmd(g),
		newUserCmd(g),
		newSlugCmd(),
	)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\nRun '%s --help' for usage", err, cmd.CommandPath())
	})
	return root
}

// config loads the environment with flag overrides applied.
func (g *globals) config() (config.Config, error) {
	env := maps.Clone(g.environ)
	if env == nil {
		env = make(map[string]string)
	}
	if g.backendURL != "" {
		env["BACKEND_URL"] = g.backendURL
	}
	if g.addr != "" {
		env["HTTP_ADDR"] = g.addr
	}
	return config.LoadFrom(env)
}

func (g *globals) logger(cfg config.Config, out io.Writer) (*slog.Logger, error) {
	cfg.Log.Output = out
	return logger.NewWithConfig(cfg.Log, middlewares.RequestIDExtractor())
}

func newClient(cfg config.Config, log *slog.Logger) (*botapi.Client, error) {
	return botapi.New(cfg.BackendURL,
		botapi.WithTimeout(cfg.BackendTimeout),
		botapi.WithLogger(log),
		botapi.WithUserAgent("botpanel/"+version),
	)
}

func formOptions(cfg config.Config) requests.BotFormOptions {
	return requests.BotFormOptions{
		SlugEnabled: cfg.BotForm.Slug,
		Models:      cfg.BotForm.Models,
		Adapters:    cfg.BotForm.Adapters,
		DataSources: cfg.BotForm.DataSources,
	}
}

// backend loads the configuration and builds a client for one-shot commands.
// Client logs go to stderr so stdout stays parseable.
func (g *globals) backend(cmd *cobra.Command) (*botapi.Client, config.Config, error) {
	cfg, err := g.config()
	if err != nil {
		return nil, config.Config{}, err
	}
	cfg.Log.SentryDSN = ""
	log, err := g.logger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, config.Config{}, err
	}
	api, err := newClient(cfg, log)
	if err != nil {
		return nil, config.Config{}, err
	}
	return api, cfg, nil
}

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	mutedColor   = color.New(color.FgHiBlack)
)

func printSuccess(w io.Writer, format string, args ...any) {
	_, _ = successColor.Fprintf(w, "✔ "+format+"\n", args...)
}

func printFailure(w io.Writer, format string, args ...any) {
	_, _ = errorColor.Fprintf(w, "✗ "+format+"\n", args...)
}
