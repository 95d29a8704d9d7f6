package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
)

// chatClient is the upstream boundary for the chatbot proxy
type chatClient interface {
	Send(ctx context.Context, message string) (reply string, raw string, err error)
}

// ChatbotService defines the interface for the chatbot proxy
type ChatbotService interface {
	Ask(ctx context.Context, message string) (*dto.ChatReply, error)
}

type chatbotServiceImpl struct {
	client chatClient
	logger zerolog.Logger
}

// NewChatbotService creates a new ChatbotService
func NewChatbotService(client chatClient, logger zerolog.Logger) ChatbotService {
	return &chatbotServiceImpl{
		client: client,
		logger: logger,
	}
}

// Ask relays one message to the upstream model. The proxy holds no local
// state, so a failed call changes nothing and maps to an upstream error.
func (s *chatbotServiceImpl) Ask(ctx context.Context, message string) (*dto.ChatReply, error) {
	reply, raw, err := s.client.Send(ctx, message)
	if err != nil {
		s.logger.Error().Err(err).Msg("Chatbot upstream call failed")
		return nil, apperrors.NewCustomError(apperrors.ErrUpstreamFailure, "Chatbot service is unavailable")
	}

	return &dto.ChatReply{Reply: reply, Raw: raw}, nil
}
