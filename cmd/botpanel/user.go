package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sapujagad-id/botpanel/panel/requests"
	"github.com/sapujagad-id/botpanel/pkg/botapi"
	"github.com/sapujagad-id/botpanel/pkg/id"
)

func newUserCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user access",
	}
	cmd.AddCommand(newUserSetAccessCmd(g))
	return cmd
}

func newUserSetAccessCmd(g *globals) *cobra.Command {
	var (
		level  string
		fields []string
	)
	cmd := &cobra.Command{
		Use:   "set-access <user-id>",
		Short: "Change a user's access level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := id.Parse(args[0])
			if err != nil {
				return err
			}

			api, cfg, err := g.backend(cmd)
			if err != nil {
				return err
			}

			extra, err := parseFields(fields)
			if err != nil {
				return err
			}
			req := requests.NewUserAccessRequest(cfg.AccessLevelMax)
			req.AccessLevel = level
			req.CollectFields(extra)
			req.Sanitize()
			if err := req.Validate(); err != nil {
				return fmt.Errorf("invalid access: %w", err)
			}

			msg, err := api.UpdateUserAccess(cmd.Context(), userID, req.Input())
			if err != nil {
				return errors.New(botapi.DetailOf(err, err.Error()))
			}
			printSuccess(cmd.OutOrStdout(), "%s", msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&level, "level", "", "access level")
	cmd.Flags().StringArrayVar(&fields, "field", nil, "extra key=value sent with the update (repeatable)")
	_ = cmd.MarkFlagRequired("level")
	return cmd
}

func parseFields(pairs []string) (url.Values, error) {
	values := url.Values{}
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("field %q: want key=value", p)
		}
		values.Set(strings.TrimSpace(k), v)
	}
	return values, nil
}
