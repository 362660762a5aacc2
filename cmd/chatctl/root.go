package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"rev-chat-relay/pkg/log"
	"rev-chat-relay/pkg/relayclient"
)

type rootOptions struct {
	url     string
	timeout time.Duration
	verbose bool

	l log.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "chatctl",
		Short:         "Talk to a Rev chat relay from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			opts.l = log.Init(log.ZapConfig{
				Level:    level,
				Mode:     log.ModeDevelopment,
				Encoding: log.EncodingConsole,
			})
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.url, "url", "http://localhost:3000", "relay base URL")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", relayclient.DefaultTimeout, "per-request timeout")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newSendCommand(opts))
	cmd.AddCommand(newReplCommand(opts))
	cmd.AddCommand(newHealthCommand(opts))
	return cmd
}

func (o *rootOptions) dial(ctx context.Context) (*relayclient.Client, error) {
	c, err := relayclient.Dial(ctx, o.url, relayclient.WithTimeout(o.timeout))
	if err != nil {
		return nil, err
	}
	o.l.Debugf(ctx, "cmd.chatctl.dial: connected to %s as session %s", o.url, c.SessionID())
	return c, nil
}
