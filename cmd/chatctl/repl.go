package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"rev-chat-relay/pkg/relayclient"
)

const (
	replPrompt = "you> "
	replReset  = "/reset"
	replQuit   = "/quit"
	replHelp   = "Commands: /reset clears the conversation, /quit exits."
)

func newReplCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Chat interactively over one connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.dial(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			fmt.Fprintln(cmd.OutOrStdout(), replHelp)
			return runRepl(cmd.Context(), c, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

type conversation interface {
	Send(ctx context.Context, text string) (string, error)
	Reset(ctx context.Context) error
}

func runRepl(ctx context.Context, c conversation, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, replPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case replQuit:
			return nil
		case replReset:
			if err := c.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "conversation reset")
			continue
		}

		reply, err := c.Send(ctx, line)
		if err != nil {
			var se *relayclient.ServerError
			if errors.As(err, &se) {
				fmt.Fprintf(out, "error: %s\n", se.Message)
				continue
			}
			return err
		}
		fmt.Fprintf(out, "rev> %s\n", reply)
	}
}
