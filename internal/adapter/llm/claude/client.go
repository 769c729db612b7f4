// Package claude implements text generation on the Anthropic Messages API.
package claude

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/huayu-backend/internal/config"
	"github.com/heartmarshall/huayu-backend/internal/domain"
	"github.com/heartmarshall/huayu-backend/internal/llm"
)

// Client sends generation requests to the Messages API.
type Client struct {
	api              anthropic.Client
	model            anthropic.Model
	maxTokens        int64
	timeout          time.Duration
	webSearchMaxUses int64
	log              *slog.Logger
}

// New creates a Client. SDK-level retries are disabled; a failed call
// surfaces immediately.
func New(cfg config.LLMConfig, log *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		api:              anthropic.NewClient(opts...),
		model:            anthropic.Model(cfg.Model),
		maxTokens:        cfg.MaxTokens,
		timeout:          cfg.Timeout,
		webSearchMaxUses: cfg.WebSearchMaxUses,
		log:              log.With("adapter", "anthropic"),
	}
}

// Generate performs one call. Transport and API failures are reported as
// domain.ErrGeneration; an answer without any text as
// domain.ErrMalformedResponse.
func (c *Client) Generate(ctx context.Context, req llm.Request) (llm.Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	params, err := c.buildParams(req)
	if err != nil {
		return llm.Response{}, err
	}

	start := time.Now()
	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		c.log.WarnContext(ctx, "messages call failed",
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()))
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return llm.Response{}, fmt.Errorf("%w: api status %d", domain.ErrGeneration, apiErr.StatusCode)
		}
		return llm.Response{}, fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}

	resp := collect(msg)
	c.log.DebugContext(ctx, "messages call done",
		slog.Duration("duration", time.Since(start)),
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int("sources", len(resp.Sources)))

	if strings.TrimSpace(resp.Text) == "" {
		return llm.Response{}, fmt.Errorf("%w: empty response", domain.ErrMalformedResponse)
	}
	return resp, nil
}

func (c *Client) buildParams(req llm.Request) (anthropic.MessageNewParams, error) {
	if len(req.Messages) == 0 {
		return anthropic.MessageNewParams{}, fmt.Errorf("%w: request has no messages", domain.ErrGeneration)
	}

	msgs := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		block := anthropic.NewTextBlock(m.Text)
		switch m.Role {
		case domain.RoleUser:
			msgs = append(msgs, anthropic.NewUserMessage(block))
		case domain.RoleModel:
			msgs = append(msgs, anthropic.NewAssistantMessage(block))
		default:
			return anthropic.MessageNewParams{}, fmt.Errorf("%w: unknown role %q", domain.ErrGeneration, m.Role)
		}
	}

	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  msgs,
	}

	if system := systemPrompt(req); system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	if req.WebSearch {
		params.Tools = []anthropic.ToolUnionParam{{
			OfWebSearchTool20250305: &anthropic.WebSearchTool20250305Param{
				MaxUses: anthropic.Int(c.webSearchMaxUses),
			},
		}}
	}

	return params, nil
}

// systemPrompt appends the declared output shape to the system instruction.
func systemPrompt(req llm.Request) string {
	if req.Schema == "" {
		return req.System
	}
	var b strings.Builder
	if req.System != "" {
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}
	b.WriteString("Respond with ONLY one JSON object matching this JSON schema. No markdown, no explanations.\n")
	b.WriteString(req.Schema)
	return b.String()
}

// collect concatenates all text blocks and gathers their citations,
// de-duplicated by URL in first-seen order.
func collect(msg *anthropic.Message) llm.Response {
	var (
		text    strings.Builder
		sources []llm.Source
		seen    = make(map[string]struct{})
	)
	for _, block := range msg.Content {
		if block.Type != "text" {
			continue
		}
		text.WriteString(block.Text)
		for _, cit := range block.Citations {
			if cit.URL == "" {
				continue
			}
			if _, ok := seen[cit.URL]; ok {
				continue
			}
			seen[cit.URL] = struct{}{}
			title := cit.Title
			if title == "" {
				title = cit.URL
			}
			sources = append(sources, llm.Source{Title: title, URL: cit.URL})
		}
	}
	return llm.Response{Text: text.String(), Sources: sources}
}
