package chat

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/AB-bunny178/mindease-chatbot/backend/internal/analysis/mood"
	"github.com/AB-bunny178/mindease-chatbot/backend/internal/model/chat"
	"github.com/AB-bunny178/mindease-chatbot/backend/internal/service/ai"
)

// ChatLog is the storage contract the service depends on.
type ChatLog interface {
	Initialize(ctx context.Context) error
	Append(ctx context.Context, role, message string, mood int) error
	Recent(ctx context.Context, limit int) ([]chat.Entry, error)
}

// Exchange is the outcome of one user turn.
type Exchange struct {
	Reply    string
	Mood     int
	Polarity float64
}

// Service orchestrates one chat interaction: mood analysis, persistence of
// the user turn, response generation, persistence of the paired bot turn.
type Service struct {
	store     ChatLog
	analyzer  *mood.Analyzer
	responder *ai.Service
	log       *logrus.Logger
}

// NewService wires the service's collaborators.
func NewService(store ChatLog, analyzer *mood.Analyzer, responder *ai.Service, log *logrus.Logger) *Service {
	return &Service{
		store:     store,
		analyzer:  analyzer,
		responder: responder,
		log:       log,
	}
}

// InitializeStore ensures the chat log schema exists.
func (s *Service) InitializeStore(ctx context.Context) error {
	return s.store.Initialize(ctx)
}

// Respond handles one user message end to end. The bot turn is stored with
// the same mood score as the user turn. Storage errors propagate to the
// caller; generation failures never do, they surface as fallback reply text.
func (s *Service) Respond(ctx context.Context, message string) (Exchange, error) {
	polarity, score := s.analyzer.Analyze(message)

	logEntry := s.log.WithFields(logrus.Fields{
		"exchange": uuid.NewString(),
		"mood":     score,
		"polarity": polarity,
	})

	if err := s.store.Append(ctx, chat.RoleUser, message, score); err != nil {
		return Exchange{}, err
	}

	reply := s.responder.Reply(ctx, message, score)

	if err := s.store.Append(ctx, chat.RoleBot, reply, score); err != nil {
		return Exchange{}, err
	}

	logEntry.Info("chat exchange completed")
	return Exchange{Reply: reply, Mood: score, Polarity: polarity}, nil
}

// History returns the most recent chat entries, newest first, capped at the
// storage default.
func (s *Service) History(ctx context.Context) ([]chat.Entry, error) {
	return s.store.Recent(ctx, 0)
}
