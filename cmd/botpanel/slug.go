package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sapujagad-id/botpanel/pkg/slug"
)

func newSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug <text>...",
		Short: "Print the slug the panel would generate for text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), slug.Make(strings.Join(args, " ")))
			return err
		},
	}
}
