// Package semantic explains nuance differences between related Japanese and
// Chinese words or sentences.
package semantic

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

const maxQueryRunes = 500

type generator interface {
	Generate(ctx context.Context, req llm.Request) (llm.Response, error)
}

// Service provides semantic comparisons.
type Service struct {
	gen   generator
	guard *busy.Guard
	log   *slog.Logger
}

// NewService creates a new semantic comparison service.
func NewService(log *slog.Logger, gen generator) *Service {
	return &Service{
		gen:   gen,
		guard: busy.New("semantic"),
		log:   log.With("service", "semantic"),
	}
}

// Compare explains, in Japanese, what query means and how it differs from
// close alternatives. A single word is compared with its synonyms.
func (s *Service) Compare(ctx context.Context, query string) (domain.SemanticResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.SemanticResult{}, domain.NewValidationError("query", "required")
	}
	if len([]rune(query)) > maxQueryRunes {
		return domain.SemanticResult{}, domain.NewValidationError("query", fmt.Sprintf("max %d characters", maxQueryRunes))
	}

	release, err := s.guard.Acquire()
	if err != nil {
		return domain.SemanticResult{}, err
	}
	defer release()

	ctx = context.WithoutCancel(ctx)

	resp, err := s.gen.Generate(ctx, llm.UserText("", buildPrompt(query), resultSchema))
	if err != nil {
		s.log.WarnContext(ctx, "compare failed", slog.String("error", err.Error()))
		return domain.SemanticResult{}, fmt.Errorf("semantic compare: %w", err)
	}

	result, err := contract.Decode[domain.SemanticResult](resp.Text)
	if err != nil {
		s.log.WarnContext(ctx, "compare reply rejected", slog.String("error", err.Error()))
		return domain.SemanticResult{}, fmt.Errorf("semantic compare: %w", err)
	}

	return result, nil
}

const resultSchema = `{
  "type": "object",
  "properties": {
    "explanation": {"type": "string", "description": "Main explanation of the meaning in Japanese"},
    "differences": {"type": "string", "description": "Detailed nuance differences in Japanese"},
    "examples": {"type": "array", "items": {"type": "string"}, "description": "Example sentences showing the difference"}
  },
  "required": ["explanation", "differences", "examples"]
}`

func buildPrompt(query string) string {
	return fmt.Sprintf(`ユーザーが入力した以下の日中/中日に関連する言葉や文章について、意味の違いやニュアンスを詳しく、分かりやすく**日本語**で解説してください。
中国語は**台湾繁体字**を使用してください。
入力: "%s"

もし入力が単語一つの場合は、それに関連する類義語との違いを説明してください。
**解説文は必ず日本語で出力してください。**`, query)
}
