package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/huayu-backend/internal/domain"
)

// conversationService is the subset of conversation.Service the handler needs.
type conversationService interface {
	Start(ctx context.Context, topic string) (domain.ConversationSnapshot, error)
	Get(ctx context.Context, id string) (domain.ConversationSnapshot, error)
	End(ctx context.Context, id string) error
	Send(ctx context.Context, id, text string) (domain.ChatMessage, error)
	Analyze(ctx context.Context, id, sentence string) (domain.ChatMessage, error)
	Hints(ctx context.Context, id string) ([]domain.Hint, error)
}

// ConversationHandler serves the conversation session endpoints.
type ConversationHandler struct {
	svc conversationService
	log *slog.Logger
}

// NewConversationHandler creates a ConversationHandler.
func NewConversationHandler(svc conversationService, logger *slog.Logger) *ConversationHandler {
	return &ConversationHandler{svc: svc, log: logger.With("handler", "conversation")}
}

type startRequest struct {
	Topic string `json:"topic"`
}

type textRequest struct {
	Text string `json:"text"`
}

type hintsResponse struct {
	Hints []domain.Hint `json:"hints"`
}

// Start handles POST /api/conversation/sessions.
func (h *ConversationHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	snap, err := h.svc.Start(r.Context(), req.Topic)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}

// Get handles GET /api/conversation/sessions/{id}.
func (h *ConversationHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// End handles DELETE /api/conversation/sessions/{id}.
func (h *ConversationHandler) End(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.End(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Send handles POST /api/conversation/sessions/{id}/messages.
func (h *ConversationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	msg, err := h.svc.Send(r.Context(), r.PathValue("id"), req.Text)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// Analyze handles POST /api/conversation/sessions/{id}/analyze.
func (h *ConversationHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	msg, err := h.svc.Analyze(r.Context(), r.PathValue("id"), req.Text)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// Hints handles POST /api/conversation/sessions/{id}/hints.
func (h *ConversationHandler) Hints(w http.ResponseWriter, r *http.Request) {
	hints, err := h.svc.Hints(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, hintsResponse{Hints: nonNil(hints)})
}
