package domain

import "time"

// ChatMessage is one entry in a conversation's display history.
type ChatMessage struct {
	ID         string            `json:"id"`
	Role       Role              `json:"role"`
	Text       string            `json:"text"`
	IsAnalysis bool              `json:"isAnalysis,omitempty"`
	Analysis   *SentenceAnalysis `json:"analysis,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// ConversationSnapshot is a read-only copy of a live conversation session.
type ConversationSnapshot struct {
	ID        string        `json:"id"`
	Topic     string        `json:"topic"`
	Messages  []ChatMessage `json:"messages"`
	Hints     []Hint        `json:"hints,omitempty"`
	StartedAt time.Time     `json:"startedAt"`
}
