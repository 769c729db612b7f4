// Package conversation runs topic-based chat practice sessions with a
// tutor persona, plus sentence analysis and reply hints on the side.
package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/huayu-backend/internal/busy"
	"github.com/heartmarshall/huayu-backend/internal/domain"
	"github.com/heartmarshall/huayu-backend/internal/llm"
	"github.com/heartmarshall/huayu-backend/internal/speech"
)

type generator interface {
	Generate(ctx context.Context, req llm.Request) (llm.Response, error)
}

type speaker interface {
	Speak(ctx context.Context, text, lang string) error
}

// Config holds session limits.
type Config struct {
	SessionTTL    time.Duration
	SweepInterval time.Duration
	MaxSessions   int
	HistoryLimit  int
}

type session struct {
	id     string
	topic  string
	system string
	guard  *busy.Guard

	mu         sync.Mutex
	history    []llm.Message // what the tutor sees
	display    []domain.ChatMessage
	hints      []domain.Hint
	startedAt  time.Time
	lastActive time.Time
}

func (s *session) snapshot() domain.ConversationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := make([]domain.ChatMessage, len(s.display))
	copy(msgs, s.display)
	var hints []domain.Hint
	if s.hints != nil {
		hints = make([]domain.Hint, len(s.hints))
		copy(hints, s.hints)
	}
	return domain.ConversationSnapshot{
		ID:        s.id,
		Topic:     s.topic,
		Messages:  msgs,
		Hints:     hints,
		StartedAt: s.startedAt,
	}
}

// Service manages live conversation sessions in memory.
type Service struct {
	gen   generator
	voice speaker
	clock clockwork.Clock
	cfg   Config
	log   *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewService creates a new conversation service.
func NewService(
	log *slog.Logger,
	gen generator,
	voice speaker,
	clock clockwork.Clock,
	cfg Config,
) *Service {
	return &Service{
		gen:      gen,
		voice:    voice,
		clock:    clock,
		cfg:      cfg,
		log:      log.With("service", "conversation"),
		sessions: make(map[string]*session),
	}
}

// Get returns a snapshot of the session.
func (s *Service) Get(_ context.Context, id string) (domain.ConversationSnapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return domain.ConversationSnapshot{}, err
	}
	return sess.snapshot(), nil
}

// End discards the session and its history.
func (s *Service) End(ctx context.Context, id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	s.log.InfoContext(ctx, "session ended", slog.String("session_id", id))
	return nil
}

// Count returns the number of live sessions.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Service) lookup(id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return sess, nil
}

// Sweep removes sessions idle for longer than the TTL and returns how many
// were removed.
func (s *Service) Sweep() int {
	cutoff := s.clock.Now().Add(-s.cfg.SessionTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastActive.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle sessions every SweepInterval until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	interval := s.cfg.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			if n := s.Sweep(); n > 0 {
				s.log.InfoContext(ctx, "idle sessions swept", slog.Int("removed", n))
			}
		}
	}
}

// speak hands the readable part of a reply to the synthesizer without
// waiting for it. Failures are logged only.
func (s *Service) speak(text string) {
	if s.voice == nil {
		return
	}
	go func() {
		if err := s.voice.Speak(context.Background(), speech.Speakable(text), speech.LangTaiwanMandarin); err != nil {
			s.log.Debug("speech skipped", slog.String("error", err.Error()))
		}
	}()
}
