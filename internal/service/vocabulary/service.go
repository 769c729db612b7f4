// Package vocabulary generates flashcard batches under a daily quota and
// keeps the user's saved word list.
package vocabulary

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/huayu-backend/internal/busy"
	"github.com/heartmarshall/huayu-backend/internal/domain"
	"github.com/heartmarshall/huayu-backend/internal/llm"
)

// DefaultBatchSize is the number of words requested per generation.
const DefaultBatchSize = 10

type generator interface {
	Generate(ctx context.Context, req llm.Request) (llm.Response, error)
}

type quotaPolicy interface {
	CanGenerate(c domain.QuotaCounter) bool
	Record(c domain.QuotaCounter) domain.QuotaCounter
	Status(c domain.QuotaCounter) domain.QuotaStatus
}

type stateStore interface {
	LoadSaved(ctx context.Context) ([]domain.VocabWord, error)
	SaveSaved(ctx context.Context, words []domain.VocabWord) error
	LoadQuota(ctx context.Context) (domain.QuotaCounter, error)
	SaveQuota(ctx context.Context, c domain.QuotaCounter) error
}

// Service provides vocabulary generation and the saved list.
type Service struct {
	store     stateStore
	policy    quotaPolicy
	gen       generator
	guard     *busy.Guard
	clock     clockwork.Clock
	batchSize int
	log       *slog.Logger

	// mu guards batch and serialises saved-list read-modify-write.
	mu    sync.Mutex
	batch []domain.VocabWord
}

// NewService creates a new vocabulary service.
func NewService(
	log *slog.Logger,
	store stateStore,
	policy quotaPolicy,
	gen generator,
	clock clockwork.Clock,
	batchSize int,
) *Service {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Service{
		store:     store,
		policy:    policy,
		gen:       gen,
		guard:     busy.New("vocabulary"),
		clock:     clock,
		batchSize: batchSize,
		log:       log.With("service", "vocabulary"),
	}
}

// Categories returns the fixed category list.
func (s *Service) Categories() []string { return domain.Categories() }

// Difficulties returns the fixed difficulty list.
func (s *Service) Difficulties() []domain.Difficulty { return domain.Difficulties() }

// Quota returns today's generation allowance.
func (s *Service) Quota(ctx context.Context) (domain.QuotaStatus, error) {
	c, err := s.store.LoadQuota(ctx)
	if err != nil {
		return domain.QuotaStatus{}, err
	}
	return s.policy.Status(c), nil
}

// Saved returns saved words in insertion order.
func (s *Service) Saved(ctx context.Context) ([]domain.VocabWord, error) {
	return s.store.LoadSaved(ctx)
}

// Batch returns the current unsaved batch. Items whose chinese matches a
// saved entry carry that entry's SavedAt.
func (s *Service) Batch(ctx context.Context) ([]domain.VocabWord, error) {
	saved, err := s.store.LoadSaved(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	batch := make([]domain.VocabWord, len(s.batch))
	copy(batch, s.batch)
	s.mu.Unlock()

	savedAt := make(map[string]domain.VocabWord, len(saved))
	for _, w := range saved {
		if _, ok := savedAt[w.Chinese]; !ok {
			savedAt[w.Chinese] = w
		}
	}
	for i := range batch {
		if w, ok := savedAt[batch[i].Chinese]; ok {
			batch[i].SavedAt = w.SavedAt
		}
	}
	return batch, nil
}
