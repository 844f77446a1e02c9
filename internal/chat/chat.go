// Package chat forwards free-form questions to the configured LLM and turns
// every failure into a fixed, user-readable reply.
package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jonathan/career-mentor/internal/llm"
	"github.com/jonathan/career-mentor/internal/prompts"
)

// Service answers chat messages. A Service with a nil client is usable and
// reports that no API key is configured.
type Service struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewService returns a chat service backed by client. client may be nil.
func NewService(client llm.Client) *Service {
	return &Service{client: client, tier: llm.TierStandard}
}

// Configured reports whether a model client is available.
func (s *Service) Configured() bool {
	return s != nil && s.client != nil
}

// Reply sends message verbatim and returns the model's answer. It never fails:
// a missing client, an empty answer and a client error each map to a fixed message.
func (s *Service) Reply(ctx context.Context, message string) string {
	if !s.Configured() {
		return prompts.MustGet(prompts.ChatFile, prompts.KeyMissingAPIKey)
	}

	reply, err := s.client.GenerateContent(ctx, message, s.tier)
	switch {
	case errors.Is(err, llm.ErrEmptyResponse):
		slog.Warn("chat model returned no text", slog.String("model", s.client.GetModel(s.tier)))
		return prompts.MustGet(prompts.ChatFile, prompts.KeyEmptyResponse)
	case err != nil:
		slog.Error("chat request failed", slog.Any("error", err))
		return prompts.Format(
			prompts.MustGet(prompts.ChatFile, prompts.KeyTechnicalDifficulties),
			map[string]string{"Error": err.Error()},
		)
	case strings.TrimSpace(reply) == "":
		return prompts.MustGet(prompts.ChatFile, prompts.KeyEmptyResponse)
	}
	return reply
}

// Close releases the underlying client.
func (s *Service) Close() error {
	if !s.Configured() {
		return nil
	}
	return s.client.Close()
}
