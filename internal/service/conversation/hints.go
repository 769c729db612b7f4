package conversation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/huayu-backend/internal/contract"
	"github.com/heartmarshall/huayu-backend/internal/domain"
	"github.com/heartmarshall/huayu-backend/internal/llm"
)

// Hints suggests what the learner could say next, based on the whole display
// history. The suggestions live on the session until the next Send.
func (s *Service) Hints(ctx context.Context, id string) ([]domain.Hint, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	release, err := sess.guard.Acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	ctx = context.WithoutCancel(ctx)

	sess.mu.Lock()
	prompt := hintPrompt(sess.display, sess.topic)
	sess.lastActive = s.clock.Now()
	sess.mu.Unlock()

	resp, err := s.gen.Generate(ctx, llm.UserText("", prompt, hintSchema))
	if err != nil {
		s.log.WarnContext(ctx, "hints failed", slog.String("session_id", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("hints: %w", err)
	}

	set, err := contract.Decode[domain.HintSet](resp.Text)
	if err != nil {
		s.log.WarnContext(ctx, "hints reply rejected", slog.String("session_id", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("hints: %w", err)
	}

	sess.mu.Lock()
	sess.hints = set.Hints
	sess.mu.Unlock()

	return set.Hints, nil
}
