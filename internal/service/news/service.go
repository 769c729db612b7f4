// Package news produces a web-grounded weekly digest of Taiwan and
// Chinese-speaking-world news for reading practice.
package news

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/huayu-backend/internal/busy"
	"github.com/heartmarshall/huayu-backend/internal/domain"
	"github.com/heartmarshall/huayu-backend/internal/llm"
)

type generator interface {
	Generate(ctx context.Context, req llm.Request) (llm.Response, error)
}

// Service provides the weekly news digest.
type Service struct {
	gen   generator
	guard *busy.Guard
	log   *slog.Logger
}

// NewService creates a new news service.
func NewService(log *slog.Logger, gen generator) *Service {
	return &Service{
		gen:   gen,
		guard: busy.New("news"),
		log:   log.With("service", "news"),
	}
}

const prompt = `今週、台湾や中華圏で話題になった興味深いニュースを検索してください。
日本語で学習するのに適した、ポジティブまたは文化的なニュースを3つ選んでください。

各ニュースについて以下のようにまとめてください：
1. タイトル（台湾繁体字）
2. 日本語の要約
3. 学習ポイント（キーワードや表現）

Markdown形式で見やすく整形して出力してください。
記事の元リンク(URL)も必ず引用して表示してください。`

// Weekly searches the web and returns a markdown digest with its sources,
// de-duplicated by URL.
func (s *Service) Weekly(ctx context.Context) (domain.NewsDigest, error) {
	release, err := s.guard.Acquire()
	if err != nil {
		return domain.NewsDigest{}, err
	}
	defer release()

	ctx = context.WithoutCancel(ctx)

	req := llm.UserText("", prompt, "")
	req.WebSearch = true

	resp, err := s.gen.Generate(ctx, req)
	if err != nil {
		s.log.WarnContext(ctx, "news failed", slog.String("error", err.Error()))
		return domain.NewsDigest{}, fmt.Errorf("weekly news: %w", err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return domain.NewsDigest{}, fmt.Errorf("weekly news: %w: empty digest", domain.ErrMalformedResponse)
	}

	digest := domain.NewsDigest{
		Content: resp.Text,
		Sources: make([]domain.NewsSource, 0, len(resp.Sources)),
	}
	seen := make(map[string]struct{}, len(resp.Sources))
	for _, src := range resp.Sources {
		if src.URL == "" {
			continue
		}
		if _, dup := seen[src.URL]; dup {
			continue
		}
		seen[src.URL] = struct{}{}
		digest.Sources = append(digest.Sources, domain.NewsSource{Title: src.Title, URL: src.URL})
	}

	s.log.InfoContext(ctx, "news digest ready", slog.Int("sources", len(digest.Sources)))
	return digest, nil
}
