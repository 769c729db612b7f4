package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/huayu-backend/internal/domain"
)

// ToggleSave removes word from the saved list when an entry with the same id
// (or, failing that, the same chinese) is present, and appends it with
// SavedAt = now otherwise. The list is persisted immediately.
// It returns the entry as it now stands and whether it is saved.
func (s *Service) ToggleSave(ctx context.Context, word domain.VocabWord) (domain.VocabWord, bool, error) {
	if strings.TrimSpace(word.ID) == "" {
		return domain.VocabWord{}, false, domain.NewValidationError("id", "required")
	}
	if strings.TrimSpace(word.Chinese) == "" {
		return domain.VocabWord{}, false, domain.NewValidationError("chinese", "required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.store.LoadSaved(ctx)
	if err != nil {
		return domain.VocabWord{}, false, err
	}

	idx := slices.IndexFunc(saved, func(w domain.VocabWord) bool { return w.ID == word.ID })
	if idx < 0 {
		idx = slices.IndexFunc(saved, func(w domain.VocabWord) bool { return w.Chinese == word.Chinese })
	}

	if idx >= 0 {
		removed := saved[idx]
		saved = slices.Delete(saved, idx, idx+1)
		if err := s.store.SaveSaved(ctx, saved); err != nil {
			return domain.VocabWord{}, false, fmt.Errorf("unsave word: %w", err)
		}
		s.log.InfoContext(ctx, "word unsaved", slog.String("id", removed.ID), slog.String("chinese", removed.Chinese))
		removed.SavedAt = nil
		return removed, false, nil
	}

	now := s.clock.Now().UTC()
	word.SavedAt = &now
	saved = append(saved, word)
	if err := s.store.SaveSaved(ctx, saved); err != nil {
		return domain.VocabWord{}, false, fmt.Errorf("save word: %w", err)
	}
	s.log.InfoContext(ctx, "word saved", slog.String("id", word.ID), slog.String("chinese", word.Chinese))
	return word, true, nil
}

// ToggleSaveByID toggles a word known by id, looking in the saved list first
// and then in the current batch.
func (s *Service) ToggleSaveByID(ctx context.Context, id string) (domain.VocabWord, bool, error) {
	word, err := s.lookup(ctx, id)
	if err != nil {
		return domain.VocabWord{}, false, err
	}
	return s.ToggleSave(ctx, word)
}

func (s *Service) lookup(ctx context.Context, id string) (domain.VocabWord, error) {
	if strings.TrimSpace(id) == "" {
		return domain.VocabWord{}, domain.NewValidationError("id", "required")
	}

	saved, err := s.store.LoadSaved(ctx)
	if err != nil {
		return domain.VocabWord{}, err
	}
	if i := slices.IndexFunc(saved, func(w domain.VocabWord) bool { return w.ID == id }); i >= 0 {
		return saved[i], nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := slices.IndexFunc(s.batch, func(w domain.VocabWord) bool { return w.ID == id }); i >= 0 {
		return s.batch[i], nil
	}

	return domain.VocabWord{}, fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
}
