package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/huayu-backend/internal/busy"
	"github.com/heartmarshall/huayu-backend/internal/domain"
	"github.com/heartmarshall/huayu-backend/internal/llm"
)

// Start opens a session on topic and returns it with the tutor's greeting
// as the first message. If the greeting fails no session is created.
func (s *Service) Start(ctx context.Context, topic string) (domain.ConversationSnapshot, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return domain.ConversationSnapshot{}, domain.NewValidationError("topic", "required")
	}
	if len([]rune(topic)) > 100 {
		return domain.ConversationSnapshot{}, domain.NewValidationError("topic", "max 100 characters")
	}
	if s.cfg.MaxSessions > 0 && s.Count() >= s.cfg.MaxSessions {
		return domain.ConversationSnapshot{}, domain.NewValidationError("session", "too many active sessions")
	}

	ctx = context.WithoutCancel(ctx)

	sess := &session{
		id:     uuid.NewString(),
		topic:  topic,
		system: tutorInstruction(topic),
		guard:  busy.New("conversation"),
	}

	greeting := llm.Message{Role: domain.RoleUser, Text: greetingRequest}
	resp, err := s.gen.Generate(ctx, llm.Request{
		System:   sess.system,
		Messages: []llm.Message{greeting},
	})
	if err != nil {
		s.log.WarnContext(ctx, "greeting failed", slog.String("topic", topic), slog.String("error", err.Error()))
		return domain.ConversationSnapshot{}, fmt.Errorf("start conversation: %w", err)
	}

	now := s.clock.Now().UTC()
	reply := llm.Message{Role: domain.RoleModel, Text: resp.Text}
	sess.history = []llm.Message{greeting, reply}
	sess.display = []domain.ChatMessage{s.newMessage(domain.RoleModel, resp.Text)}
	sess.startedAt = now
	sess.lastActive = now

	s.mu.Lock()
	if s.cfg.MaxSessions > 0 && len(s.sessions) >= s.cfg.MaxSessions {
		s.mu.Unlock()
		return domain.ConversationSnapshot{}, domain.NewValidationError("session", "too many active sessions")
	}
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.log.InfoContext(ctx, "session started", slog.String("session_id", sess.id), slog.String("topic", topic))
	s.speak(resp.Text)

	return sess.snapshot(), nil
}

func (s *Service) newMessage(role domain.Role, text string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		CreatedAt: s.clock.Now().UTC(),
	}
}
