package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/huayu-backend/internal/domain"
	"github.com/heartmarshall/huayu-backend/internal/service/vocabulary"
)

// vocabularyService is the subset of vocabulary.Service the handler needs.
type vocabularyService interface {
	Categories() []string
	Difficulties() []domain.Difficulty
	Quota(ctx context.Context) (domain.QuotaStatus, error)
	Generate(ctx context.Context, input vocabulary.GenerateInput) ([]domain.VocabWord, error)
	Batch(ctx context.Context) ([]domain.VocabWord, error)
	Saved(ctx context.Context) ([]domain.VocabWord, error)
	ToggleSaveByID(ctx context.Context, id string) (domain.VocabWord, bool, error)
}

// VocabularyHandler serves the vocabulary endpoints.
type VocabularyHandler struct {
	svc vocabularyService
	log *slog.Logger
}

// NewVocabularyHandler creates a VocabularyHandler.
func NewVocabularyHandler(svc vocabularyService, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{svc: svc, log: logger.With("handler", "vocabulary")}
}

type categoriesResponse struct {
	Categories   []string            `json:"categories"`
	Difficulties []domain.Difficulty `json:"difficulties"`
}

type generateRequest struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

type generateResponse struct {
	Words []domain.VocabWord `json:"words"`
	Quota domain.QuotaStatus `json:"quota"`
}

type wordsResponse struct {
	Words []domain.VocabWord `json:"words"`
}

type toggleResponse struct {
	Word  domain.VocabWord `json:"word"`
	Saved bool             `json:"saved"`
}

// Categories handles GET /api/vocabulary/categories.
func (h *VocabularyHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, categoriesResponse{
		Categories:   h.svc.Categories(),
		Difficulties: h.svc.Difficulties(),
	})
}

// Quota handles GET /api/vocabulary/quota.
func (h *VocabularyHandler) Quota(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.Quota(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// Generate handles POST /api/vocabulary/generate.
func (h *VocabularyHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	words, err := h.svc.Generate(r.Context(), vocabulary.GenerateInput{
		Category:   req.Category,
		Difficulty: domain.Difficulty(req.Difficulty),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	status, err := h.svc.Quota(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{Words: nonNil(words), Quota: status})
}

// Batch handles GET /api/vocabulary/batch.
func (h *VocabularyHandler) Batch(w http.ResponseWriter, r *http.Request) {
	words, err := h.svc.Batch(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, wordsResponse{Words: nonNil(words)})
}

// Saved handles GET /api/vocabulary/saved.
func (h *VocabularyHandler) Saved(w http.ResponseWriter, r *http.Request) {
	words, err := h.svc.Saved(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, wordsResponse{Words: nonNil(words)})
}

// Toggle handles POST /api/vocabulary/words/{id}/toggle.
func (h *VocabularyHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	word, saved, err := h.svc.ToggleSaveByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toggleResponse{Word: word, Saved: saved})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
