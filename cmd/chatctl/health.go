package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rev-chat-relay/pkg/relayclient"
)

func newHealthCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show relay health and whether the API key is configured",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			h, err := relayclient.GetHealth(ctx, opts.url)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "status: %s\nmodel: %s\napi configured: %t\n", h.Status, h.Model, h.APIConfigured)
			return nil
		},
	}
}
