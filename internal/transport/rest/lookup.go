package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/huayu-backend/internal/domain"
)

type dictionaryService interface {
	Lookup(ctx context.Context, query string) (domain.DictionaryResult, error)
}

type semanticService interface {
	Compare(ctx context.Context, query string) (domain.SemanticResult, error)
}

type newsService interface {
	Weekly(ctx context.Context) (domain.NewsDigest, error)
}

// LookupHandler serves the one-shot reference screens: dictionary,
// nuance comparison and the weekly news digest.
type LookupHandler struct {
	dict     dictionaryService
	semantic semanticService
	news     newsService
	log      *slog.Logger
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(dict dictionaryService, semantic semanticService, news newsService, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{
		dict:     dict,
		semantic: semantic,
		news:     news,
		log:      logger.With("handler", "lookup"),
	}
}

type queryRequest struct {
	Query string `json:"query"`
}

// Dictionary handles POST /api/dictionary.
func (h *LookupHandler) Dictionary(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	result, err := h.dict.Lookup(r.Context(), req.Query)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Semantic handles POST /api/semantic.
func (h *LookupHandler) Semantic(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	result, err := h.semantic.Compare(r.Context(), req.Query)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// News handles GET /api/news.
func (h *LookupHandler) News(w http.ResponseWriter, r *http.Request) {
	digest, err := h.news.Weekly(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, digest)
}
