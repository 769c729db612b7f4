package vocabulary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/huayu-backend/internal/contract"
	"github.com/heartmarshall/huayu-backend/internal/domain"
	"github.com/heartmarshall/huayu-backend/internal/llm"
)

// Generate replaces the current batch with freshly generated words.
//
// The quota is checked before any external call and charged only after the
// reply parses. On any failure the previous batch and counter are kept.
func (s *Service) Generate(ctx context.Context, input GenerateInput) ([]domain.VocabWord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	release, err := s.guard.Acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	// The result is applied even if the client goes away mid-call.
	ctx = context.WithoutCancel(ctx)

	counter, err := s.store.LoadQuota(ctx)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanGenerate(counter) {
		return nil, domain.ErrQuotaExceeded
	}

	exclude, err := s.excludeList(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.gen.Generate(ctx, llm.UserText("",
		buildPrompt(input.Category, input.Difficulty, s.batchSize, exclude), wordListSchema))
	if err != nil {
		s.log.WarnContext(ctx, "vocabulary generation failed",
			slog.String("category", input.Category), slog.String("error", err.Error()))
		return nil, fmt.Errorf("generate vocabulary: %w", err)
	}

	list, err := contract.Decode[domain.GeneratedWordList](resp.Text)
	if err != nil {
		s.log.WarnContext(ctx, "vocabulary reply rejected",
			slog.String("category", input.Category), slog.String("error", err.Error()))
		return nil, fmt.Errorf("generate vocabulary: %w", err)
	}

	words := make([]domain.VocabWord, len(list.Words))
	for i, w := range list.Words {
		words[i] = domain.VocabWord{
			ID:       uuid.NewString(),
			Chinese:  w.Chinese,
			Pinyin:   w.Pinyin,
			Zhuyin:   w.Zhuyin,
			Japanese: w.Japanese,
			Category: input.Category,
		}
	}

	next := s.policy.Record(counter)
	if err := s.store.SaveQuota(ctx, next); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.batch = words
	s.mu.Unlock()

	s.log.InfoContext(ctx, "vocabulary generated",
		slog.String("category", input.Category),
		slog.String("difficulty", input.Difficulty.String()),
		slog.Int("words", len(words)),
		slog.Int("excluded", len(exclude)),
		slog.Int("quota_used", next.Count),
	)

	return s.Batch(ctx)
}

// excludeList returns the chinese of the current batch followed by all saved
// words. The generator is asked to avoid them; nothing is filtered locally.
func (s *Service) excludeList(ctx context.Context) ([]string, error) {
	saved, err := s.store.LoadSaved(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exclude := make([]string, 0, len(s.batch)+len(saved))
	for _, w := range s.batch {
		exclude = append(exclude, w.Chinese)
	}
	for _, w := range saved {
		exclude = append(exclude, w.Chinese)
	}
	return exclude, nil
}
