package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rev-chat-relay/pkg/relayclient"
)

type fakeConversation struct {
	sent   []string
	resets int
	fail   map[string]error
}

func (f *fakeConversation) Send(ctx context.Context, text string) (string, error) {
	f.sent = append(f.sent, text)
	if err := f.fail[text]; err != nil {
		return "", err
	}
	return "re: " + text, nil
}

func (f *fakeConversation) Reset(ctx context.Context) error {
	f.resets++
	return nil
}

func TestRunRepl(t *testing.T) {
	conv := &fakeConversation{fail: map[string]error{
		"bad": &relayclient.ServerError{Message: "Failed to generate response"},
	}}
	in := strings.NewReader("hello\n\n/reset\nbad\nbye\n/quit\nignored\n")
	var out bytes.Buffer

	require.NoError(t, runRepl(context.Background(), conv, in, &out))

	assert.Equal(t, []string{"hello", "bad", "bye"}, conv.sent)
	assert.Equal(t, 1, conv.resets)
	assert.Contains(t, out.String(), "rev> re: hello")
	assert.Contains(t, out.String(), "conversation reset")
	assert.Contains(t, out.String(), "error: Failed to generate response")
	assert.NotContains(t, out.String(), "ignored")
}

func TestRunRepl_EOF(t *testing.T) {
	conv := &fakeConversation{}
	var out bytes.Buffer

	require.NoError(t, runRepl(context.Background(), conv, strings.NewReader("hi"), &out))
	assert.Equal(t, []string{"hi"}, conv.sent)
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := newRootCommand()
	assert.NotNil(t, cmd.PersistentFlags().Lookup("url"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("timeout"))

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["send"])
	assert.True(t, names["repl"])
	assert.True(t, names["health"])
}
