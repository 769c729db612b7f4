package rest

import "net/http"

// Handlers bundles every REST handler mounted by NewRouter.
type Handlers struct {
	Health       *HealthHandler
	Capabilities *CapabilitiesHandler
	Vocabulary   *VocabularyHandler
	Conversation *ConversationHandler
	Lookup       *LookupHandler
}

// NewRouter registers all routes. apiWrap, when non-nil, wraps only the
// /api/ subtree so health probes bypass it.
func NewRouter(h Handlers, apiWrap func(http.Handler) http.Handler) http.Handler {
	root := http.NewServeMux()
	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /health", h.Health.Health)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/capabilities", h.Capabilities.Get)

	mux.HandleFunc("GET /api/vocabulary/categories", h.Vocabulary.Categories)
	mux.HandleFunc("GET /api/vocabulary/quota", h.Vocabulary.Quota)
	mux.HandleFunc("POST /api/vocabulary/generate", h.Vocabulary.Generate)
	mux.HandleFunc("GET /api/vocabulary/batch", h.Vocabulary.Batch)
	mux.HandleFunc("GET /api/vocabulary/saved", h.Vocabulary.Saved)
	mux.HandleFunc("POST /api/vocabulary/words/{id}/toggle", h.Vocabulary.Toggle)

	mux.HandleFunc("POST /api/conversation/sessions", h.Conversation.Start)
	mux.HandleFunc("GET /api/conversation/sessions/{id}", h.Conversation.Get)
	mux.HandleFunc("DELETE /api/conversation/sessions/{id}", h.Conversation.End)
	mux.HandleFunc("POST /api/conversation/sessions/{id}/messages", h.Conversation.Send)
	mux.HandleFunc("POST /api/conversation/sessions/{id}/analyze", h.Conversation.Analyze)
	mux.HandleFunc("POST /api/conversation/sessions/{id}/hints", h.Conversation.Hints)

	mux.HandleFunc("POST /api/dictionary", h.Lookup.Dictionary)
	mux.HandleFunc("POST /api/semantic", h.Lookup.Semantic)
	mux.HandleFunc("GET /api/news", h.Lookup.News)

	var api http.Handler = mux
	if apiWrap != nil {
		api = apiWrap(mux)
	}
	root.Handle("/api/", api)
	return root
}
