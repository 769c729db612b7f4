package dictionary

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/huayu-backend/internal/domain"
	"github.com/heartmarshall/huayu-backend/internal/llm"
)

//go:generate moq -out generator_mock_test.go -pkg dictionary . generator

func newTestService(gen *generatorMock) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), gen)
}

func reply(text string, err error) *generatorMock {
	return &generatorMock{
		GenerateFunc: func(ctx context.Context, req llm.Request) (llm.Response, error) {
			return llm.Response{Text: text}, err
		},
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		text    string
		genErr  error
		wantErr error
		check   func(t *testing.T, got domain.DictionaryResult, gen *generatorMock)
	}{
		{
			name:  "japanese input",
			query: " ありがとう ",
			text: "```json\n" + `{"word":"謝謝","pinyin":"xièxie","zhuyin":"ㄒㄧㄝˋ ˙ㄒㄧㄝ","meaning":"ありがとう",` +
				`"examples":[{"sentence":"謝謝你的幫忙。","translation":"手伝ってくれてありがとう。"}]}` + "\n```",
			check: func(t *testing.T, got domain.DictionaryResult, gen *generatorMock) {
				assert.Equal(t, "謝謝", got.Word)
				assert.Equal(t, "ㄒㄧㄝˋ ˙ㄒㄧㄝ", got.Zhuyin)
				require.Len(t, got.Examples, 1)

				req := gen.GenerateCalls()[0].Req
				assert.Equal(t, resultSchema, req.Schema)
				assert.Contains(t, req.Messages[0].Text, `入力: "ありがとう"`)
			},
		},
		{
			name:    "missing meaning fails closed",
			query:   "謝謝",
			text:    `{"word":"謝謝","pinyin":"xièxie","zhuyin":"ㄒㄧㄝˋ ˙ㄒㄧㄝ","examples":[]}`,
			wantErr: domain.ErrMalformedResponse,
		},
		{
			name:    "example without translation",
			query:   "謝謝",
			text:    `{"word":"謝謝","pinyin":"xièxie","zhuyin":"ㄒㄧㄝˋ","meaning":"ありがとう","examples":[{"sentence":"謝謝"}]}`,
			wantErr: domain.ErrMalformedResponse,
		},
		{
			name:    "generator failure",
			query:   "謝謝",
			genErr:  domain.ErrGeneration,
			wantErr: domain.ErrGeneration,
		},
		{
			name:    "empty query",
			query:   "  ",
			wantErr: domain.ErrValidation,
		},
		{
			name:    "too long",
			query:   strings.Repeat("字", maxQueryRunes+1),
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gen := reply(tt.text, tt.genErr)
			svc := newTestService(gen)

			got, err := svc.Lookup(context.Background(), tt.query)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, got, gen)
			}
		})
	}
}

func TestLookup_ConcurrentIsBusy(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	unblock := make(chan struct{})
	gen := &generatorMock{
		GenerateFunc: func(ctx context.Context, req llm.Request) (llm.Response, error) {
			close(started)
			<-unblock
			return llm.Response{}, domain.ErrGeneration
		},
	}
	svc := newTestService(gen)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Lookup(context.Background(), "貓")
		done <- err
	}()
	<-started

	_, err := svc.Lookup(context.Background(), "狗")
	require.ErrorIs(t, err, domain.ErrBusy)

	close(unblock)
	require.ErrorIs(t, <-done, domain.ErrGeneration)
}
