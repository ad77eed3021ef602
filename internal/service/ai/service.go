package ai

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

// Generator is the injectable text-completion capability: one rendered
// prompt in, one completion out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	// MissingKeyReply is surfaced as a normal reply when no API credential
	// was configured, so the conversation UI degrades instead of breaking.
	MissingKeyReply = "❌ Server missing Gemini API key."
	// FallbackReply is surfaced when the remote call fails for any reason.
	FallbackReply = "❌ Unable to generate response. Please try again."
)

// Service renders the therapist prompt and delegates completion to the
// configured Generator. Remote failures never escape: they are logged and
// replaced with a fixed fallback reply.
type Service struct {
	gen Generator
	log *logrus.Logger
}

// NewService wraps gen. A nil gen means no credential was supplied; every
// reply then carries MissingKeyReply.
func NewService(gen Generator, log *logrus.Logger) *Service {
	return &Service{gen: gen, log: log}
}

// Reply produces the bot's answer for a user message and mood score.
func (s *Service) Reply(ctx context.Context, userText string, moodScore int) string {
	if s.gen == nil {
		return MissingKeyReply
	}

	text, err := s.gen.Generate(ctx, BuildPrompt(userText, moodScore))
	if err != nil {
		s.log.WithError(err).Error("response generation failed")
		return FallbackReply
	}
	return strings.TrimSpace(text)
}
