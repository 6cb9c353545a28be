package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sapujagad-id/botpanel/panel/handlers"
	"github.com/sapujagad-id/botpanel/panel/requests"
	"github.com/sapujagad-id/botpanel/pkg/botapi"
	"github.com/sapujagad-id/botpanel/pkg/slugsync"
)

// deleteConcurrency bounds parallel deletes.
const deleteConcurrency = 4

const listTimeLayout = "2006-01-02 15:04"

func newBotCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Manage chatbots",
	}
	cmd.AddCommand(
		newBotListCmd(g),
		newBotCreateCmd(g),
		newBotUpdateCmd(g),
		newBotDeleteCmd(g),
		newBotCheckSlugCmd(g),
	)
	return cmd
}

func newBotListCmd(g *globals) *cobra.Command {
	var (
		opts   botapi.ListOptions
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List chatbots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, _, err := g.backend(cmd)
			if err != nil {
				return err
			}
			bots, err := api.ListBots(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(bots)
			}
			return printBots(cmd.OutOrStdout(), bots)
		},
	}
	cmd.Flags().IntVar(&opts.Skip, "skip", 0, "number of bots to skip")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of bots (0 uses the backend default)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func printBots(w io.Writer, bots []botapi.Bot) error {
	if len(bots) == 0 {
		_, err := mutedColor.Fprintln(w, "No chatbots yet.")
		return err
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)
	table.Header("ID", "Name", "Slug", "Model", "Adapter", "Updated")
	for _, b := range bots {
		updated := ""
		if !b.UpdatedAt.IsZero() {
			updated = b.UpdatedAt.Format(listTimeLayout)
		}
		if err := table.Append(b.ID, b.Name, b.Slug, b.Model, b.Adapter, updated); err != nil {
			return err
		}
	}
	return table.Render()
}

// botFlags mirrors the chatbot form.
type botFlags struct {
	name         string
	slug         string
	systemPrompt string
	model        string
	adapter      string
	dataSources  []string
}

func (f *botFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "bot name")
	cmd.Flags().StringVar(&f.slug, "slug", "", "bot slug (generated from the name when omitted)")
	cmd.Flags().StringVar(&f.systemPrompt, "system-prompt", "", "system prompt")
	cmd.Flags().StringVar(&f.model, "model", "", "model")
	cmd.Flags().StringVar(&f.adapter, "adapter", "", "adapter")
	cmd.Flags().StringSliceVar(&f.dataSources, "data-source", nil, "data source (repeatable)")
}

// apply copies the flags the user set onto req. An unset slug follows the
// name the same way the form does in auto mode.
func (f *botFlags) apply(cmd *cobra.Command, req *requests.BotRequest) {
	flags := cmd.Flags()
	if flags.Changed("name") {
		req.Name = f.name
	}
	if flags.Changed("system-prompt") {
		req.SystemPrompt = f.systemPrompt
	}
	if flags.Changed("model") {
		req.Model = f.model
	}
	if flags.Changed("adapter") {
		req.Adapter = f.adapter
	}
	if flags.Changed("data-source") {
		req.DataSources = f.dataSources
	}

	sync := slugsync.New(req.SlugState())
	if flags.Changed("slug") {
		sync.SlugEdited(f.slug)
	}
	sync.NameChanged(req.Name)
	sync.SlugBlurred()
	req.SetSlugState(sync.State())
}

// check runs the form checks so the CLI rejects what the panel rejects.
func check(req *requests.BotRequest) error {
	req.Sanitize()
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid bot: %w", err)
	}
	return nil
}

func newBotCreateCmd(g *globals) *cobra.Command {
	var f botFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a chatbot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, cfg, err := g.backend(cmd)
			if err != nil {
				return err
			}
			req := requests.NewBotRequest(formOptions(cfg))
			f.apply(cmd, req)
			if err := check(req); err != nil {
				return err
			}
			if err := api.CreateBot(cmd.Context(), req.Input()); err != nil {
				return errors.New(botapi.DetailOf(err, err.Error()))
			}
			printSuccess(cmd.OutOrStdout(), handlers.MsgBotCreated)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newBotUpdateCmd(g *globals) *cobra.Command {
	var f botFlags
	cmd := &cobra.Command{
		Use:   "update <bot-id>",
		Short: "Update a chatbot; unset flags keep their stored values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, cfg, err := g.backend(cmd)
			if err != nil {
				return err
			}
			bot, err := api.GetBot(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			req := requests.BotRequestFrom(*bot, formOptions(cfg))
			f.apply(cmd, req)
			if err := check(req); err != nil {
				return err
			}
			if err := api.UpdateBot(cmd.Context(), bot.ID, req.Input()); err != nil {
				return errors.New(botapi.DetailOf(err, err.Error()))
			}
			printSuccess(cmd.OutOrStdout(), handlers.MsgBotUpdated)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newBotDeleteCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <bot-id>...",
		Short: "Delete one or more chatbots",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, _, err := g.backend(cmd)
			if err != nil {
				return err
			}
			return deleteBots(cmd, api, args)
		},
	}
}

// deleteBots deletes ids concurrently. One failure does not stop the others;
// results are printed in argument order.
func deleteBots(cmd *cobra.Command, api handlers.BotAPI, ids []string) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs = make([]error, len(ids))
	)
	g.SetLimit(deleteConcurrency)

	for i, botID := range ids {
		g.Go(func() error {
			err := api.DeleteBot(cmd.Context(), botID)
			mu.Lock()
			errs[i] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	out := cmd.OutOrStdout()
	var failed []error
	for i, botID := range ids {
		if errs[i] != nil {
			printFailure(out, "%s: %s", botID, botapi.DetailOf(errs[i], errs[i].Error()))
			failed = append(failed, fmt.Errorf("%s: %w", botID, errs[i]))
			continue
		}
		printSuccess(out, "%s: %s", botID, handlers.MsgBotDeleted)
	}
	return errors.Join(failed...)
}

func newBotCheckSlugCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "check-slug <slug>",
		Short: "Check whether a slug is still free",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var q requests.SlugCheck
			q.Slug = args[0]
			q.Sanitize()
			if q.Blank() {
				return errors.New("slug cannot be empty")
			}

			api, _, err := g.backend(cmd)
			if err != nil {
				return err
			}
			status, err := api.CheckSlug(cmd.Context(), q.Slug)
			if err != nil {
				return fmt.Errorf("check slug: %w", err)
			}
			if status == botapi.SlugTaken {
				printFailure(cmd.OutOrStdout(), "%s is taken", q.Slug)
				return nil
			}
			printSuccess(cmd.OutOrStdout(), "%s is available", q.Slug)
			return nil
		},
	}
}
