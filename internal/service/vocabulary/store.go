package vocabulary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/huayu-backend/internal/domain"
)

// Persisted keys. The names are part of the on-disk format.
const (
	KeySaved        = "vocab_db"
	KeyQuotaDate    = "vocab_last_refresh_date"
	KeyQuotaCounter = "vocab_refresh_count"
)

type kvStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, values map[string]string) error
}

// Store reads and writes the typed vocabulary state. Loads are tolerant:
// absent or malformed values come back as defaults with a warning, so a
// corrupted key never blocks the user. Backend failures are still returned.
type Store struct {
	kv  kvStore
	log *slog.Logger
}

// NewStore creates a typed store over a key-value backend.
func NewStore(kv kvStore, log *slog.Logger) *Store {
	return &Store{kv: kv, log: log.With("component", "vocab_store")}
}

// LoadSaved returns the saved list in insertion order, never nil.
func (s *Store) LoadSaved(ctx context.Context) ([]domain.VocabWord, error) {
	raw, ok, err := s.kv.Get(ctx, KeySaved)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", KeySaved, err)
	}
	if !ok || raw == "" {
		return []domain.VocabWord{}, nil
	}

	var words []domain.VocabWord
	if err := json.Unmarshal([]byte(raw), &words); err != nil {
		s.log.WarnContext(ctx, "malformed saved list, using empty",
			slog.String("key", KeySaved), slog.String("error", err.Error()))
		return []domain.VocabWord{}, nil
	}
	if words == nil {
		words = []domain.VocabWord{}
	}
	return words, nil
}

// SaveSaved overwrites the saved list.
func (s *Store) SaveSaved(ctx context.Context, words []domain.VocabWord) error {
	if words == nil {
		words = []domain.VocabWord{}
	}
	raw, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeySaved, err)
	}
	if err := s.kv.Put(ctx, map[string]string{KeySaved: string(raw)}); err != nil {
		return fmt.Errorf("save %s: %w", KeySaved, err)
	}
	return nil
}

// LoadQuota returns the persisted counter. A missing or unparsable count
// reads as zero.
func (s *Store) LoadQuota(ctx context.Context) (domain.QuotaCounter, error) {
	date, _, err := s.kv.Get(ctx, KeyQuotaDate)
	if err != nil {
		return domain.QuotaCounter{}, fmt.Errorf("load %s: %w", KeyQuotaDate, err)
	}
	rawCount, ok, err := s.kv.Get(ctx, KeyQuotaCounter)
	if err != nil {
		return domain.QuotaCounter{}, fmt.Errorf("load %s: %w", KeyQuotaCounter, err)
	}

	count := 0
	if ok && rawCount != "" {
		n, convErr := strconv.Atoi(rawCount)
		if convErr != nil {
			s.log.WarnContext(ctx, "malformed quota count, using 0",
				slog.String("key", KeyQuotaCounter), slog.String("value", rawCount))
		} else {
			count = n
		}
	}

	return domain.QuotaCounter{Date: date, Count: count}, nil
}

// SaveQuota writes both counter keys in one step.
func (s *Store) SaveQuota(ctx context.Context, c domain.QuotaCounter) error {
	err := s.kv.Put(ctx, map[string]string{
		KeyQuotaDate:    c.Date,
		KeyQuotaCounter: strconv.Itoa(c.Count),
	})
	if err != nil {
		return fmt.Errorf("save quota: %w", err)
	}
	return nil
}
