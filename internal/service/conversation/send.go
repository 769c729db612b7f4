package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/huayu-backend/internal/contract"
	"github.com/heartmarshall/huayu-backend/internal/domain"
	"github.com/heartmarshall/huayu-backend/internal/llm"
)

const maxMessageRunes = 1000

func validateText(field, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.NewValidationError(field, "required")
	}
	if len([]rune(text)) > maxMessageRunes {
		return "", domain.NewValidationError(field, fmt.Sprintf("max %d characters", maxMessageRunes))
	}
	return text, nil
}

// Send posts a user message and returns the tutor's reply.
//
// Hints are cleared and the user message is shown immediately. If the call
// fails the message stays in the display history but the tutor's context is
// not extended, so the next Send starts from the last good exchange.
func (s *Service) Send(ctx context.Context, id, text string) (domain.ChatMessage, error) {
	text, err := validateText("text", text)
	if err != nil {
		return domain.ChatMessage{}, err
	}

	sess, err := s.lookup(id)
	if err != nil {
		return domain.ChatMessage{}, err
	}

	release, err := sess.guard.Acquire()
	if err != nil {
		return domain.ChatMessage{}, err
	}
	defer release()

	ctx = context.WithoutCancel(ctx)

	userTurn := llm.Message{Role: domain.RoleUser, Text: text}

	sess.mu.Lock()
	sess.hints = nil
	sess.display = append(sess.display, s.newMessage(domain.RoleUser, text))
	sess.lastActive = s.clock.Now()
	messages := s.contextWindow(append(sess.history[:len(sess.history):len(sess.history)], userTurn))
	system := sess.system
	sess.mu.Unlock()

	resp, err := s.gen.Generate(ctx, llm.Request{System: system, Messages: messages})
	if err != nil {
		s.log.WarnContext(ctx, "reply failed", slog.String("session_id", id), slog.String("error", err.Error()))
		return domain.ChatMessage{}, fmt.Errorf("send message: %w", err)
	}

	reply := s.newMessage(domain.RoleModel, resp.Text)

	sess.mu.Lock()
	sess.history = append(sess.history, userTurn, llm.Message{Role: domain.RoleModel, Text: resp.Text})
	sess.display = append(sess.display, reply)
	sess.lastActive = s.clock.Now()
	sess.mu.Unlock()

	s.speak(resp.Text)
	return reply, nil
}

// contextWindow keeps the most recent HistoryLimit messages, starting on a
// user turn.
func (s *Service) contextWindow(msgs []llm.Message) []llm.Message {
	limit := s.cfg.HistoryLimit
	if limit <= 0 || len(msgs) <= limit {
		return msgs
	}
	msgs = msgs[len(msgs)-limit:]
	for len(msgs) > 1 && msgs[0].Role != domain.RoleUser {
		msgs = msgs[1:]
	}
	return msgs
}

// Analyze checks a learner sentence. The request and the structured result
// are added to the display history only; the tutor's context is unchanged.
func (s *Service) Analyze(ctx context.Context, id, sentence string) (domain.ChatMessage, error) {
	sentence, err := validateText("sentence", sentence)
	if err != nil {
		return domain.ChatMessage{}, err
	}

	sess, err := s.lookup(id)
	if err != nil {
		return domain.ChatMessage{}, err
	}

	release, err := sess.guard.Acquire()
	if err != nil {
		return domain.ChatMessage{}, err
	}
	defer release()

	ctx = context.WithoutCancel(ctx)

	sess.mu.Lock()
	sess.display = append(sess.display, s.newMessage(domain.RoleUser, analyzeDisplayText(sentence)))
	sess.lastActive = s.clock.Now()
	sess.mu.Unlock()

	resp, err := s.gen.Generate(ctx, llm.UserText("", analysisPrompt(sentence), analysisSchema))
	if err != nil {
		s.log.WarnContext(ctx, "analysis failed", slog.String("session_id", id), slog.String("error", err.Error()))
		return domain.ChatMessage{}, fmt.Errorf("analyze sentence: %w", err)
	}

	analysis, err := contract.Decode[domain.SentenceAnalysis](resp.Text)
	if err != nil {
		s.log.WarnContext(ctx, "analysis reply rejected", slog.String("session_id", id), slog.String("error", err.Error()))
		return domain.ChatMessage{}, fmt.Errorf("analyze sentence: %w", err)
	}

	msg := s.newMessage(domain.RoleModel, analysisLabel)
	msg.IsAnalysis = true
	msg.Analysis = &analysis

	sess.mu.Lock()
	sess.display = append(sess.display, msg)
	sess.lastActive = s.clock.Now()
	sess.mu.Unlock()

	return msg, nil
}
