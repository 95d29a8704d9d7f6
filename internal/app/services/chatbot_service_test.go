package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
)

type fakeChatClient struct {
	reply string
	raw   string
	err   error
	seen  string
}

func (f *fakeChatClient) Send(ctx context.Context, message string) (string, string, error) {
	f.seen = message
	return f.reply, f.raw, f.err
}

func TestChatbotAskRelaysMessage(t *testing.T) {
	client := &fakeChatClient{
		reply: "Goroutines are lightweight threads.",
		raw:   `{"candidates":[{"content":{"parts":[{"text":"Goroutines are lightweight threads."}]}}]}`,
	}
	svc := NewChatbotService(client, zerolog.Nop())

	reply, err := svc.Ask(context.Background(), "What is a goroutine?")
	require.NoError(t, err)

	assert.Equal(t, "What is a goroutine?", client.seen)
	assert.Equal(t, "Goroutines are lightweight threads.", reply.Reply)
	assert.Equal(t, client.raw, reply.Raw, "the upstream body is passed through untouched")
}

func TestChatbotAskMapsUpstreamFailure(t *testing.T) {
	client := &fakeChatClient{err: errors.New("connection refused")}
	svc := NewChatbotService(client, zerolog.Nop())

	_, err := svc.Ask(context.Background(), "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamFailure, "transport details never reach the client")
}
