// Package dictionary looks up Japanese or Chinese words and returns a
// bilingual entry with pinyin and zhuyin.
package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/huayu-backend/internal/busy"
	"github.com/heartmarshall/huayu-backend/internal/contract"
	"github.com/heartmarshall/huayu-backend/internal/domain"
	"github.com/heartmarshall/huayu-backend/internal/llm"
)

const maxQueryRunes = 200

type generator interface {
	Generate(ctx context.Context, req llm.Request) (llm.Response, error)
}

// Service provides dictionary lookups.
type Service struct {
	gen   generator
	guard *busy.Guard
	log   *slog.Logger
}

// NewService creates a new dictionary service.
func NewService(log *slog.Logger, gen generator) *Service {
	return &Service{
		gen:   gen,
		guard: busy.New("dictionary"),
		log:   log.With("service", "dictionary"),
	}
}

// Lookup returns the dictionary entry for query. Japanese input yields the
// Taiwan Mandarin word; Chinese input yields its Japanese meaning.
func (s *Service) Lookup(ctx context.Context, query string) (domain.DictionaryResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.DictionaryResult{}, domain.NewValidationError("query", "required")
	}
	if len([]rune(query)) > maxQueryRunes {
		return domain.DictionaryResult{}, domain.NewValidationError("query", fmt.Sprintf("max %d characters", maxQueryRunes))
	}

	release, err := s.guard.Acquire()
	if err != nil {
		return domain.DictionaryResult{}, err
	}
	defer release()

	ctx = context.WithoutCancel(ctx)

	resp, err := s.gen.Generate(ctx, llm.UserText("", buildPrompt(query), resultSchema))
	if err != nil {
		s.log.WarnContext(ctx, "lookup failed", slog.String("query", query), slog.String("error", err.Error()))
		return domain.DictionaryResult{}, fmt.Errorf("dictionary lookup: %w", err)
	}

	result, err := contract.Decode[domain.DictionaryResult](resp.Text)
	if err != nil {
		s.log.WarnContext(ctx, "lookup reply rejected", slog.String("query", query), slog.String("error", err.Error()))
		return domain.DictionaryResult{}, fmt.Errorf("dictionary lookup: %w", err)
	}

	s.log.InfoContext(ctx, "lookup done", slog.String("query", query), slog.String("word", result.Word))
	return result, nil
}

const resultSchema = `{
  "type": "object",
  "properties": {
    "word": {"type": "string"},
    "pinyin": {"type": "string"},
    "zhuyin": {"type": "string", "description": "Bopomofo pronunciation"},
    "meaning": {"type": "string"},
    "examples": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "sentence": {"type": "string"},
          "translation": {"type": "string"}
        },
        "required": ["sentence", "translation"]
      }
    }
  },
  "required": ["word", "pinyin", "zhuyin", "meaning", "examples"]
}`

func buildPrompt(query string) string {
	return fmt.Sprintf(`日中・中日辞書として振る舞ってください。
入力: "%s"

入力が日本語なら中国語訳（台湾繁体字）を、中国語なら日本語訳を提供してください。
**必ず注音符号（Bopomofo）とPinyinの両方**を含めてください。`, query)
}
