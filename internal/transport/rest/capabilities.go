package rest

import "net/http"

// speechProbe reports whether text-to-speech output is wired.
type speechProbe interface {
	Available() bool
}

// CapabilitiesHandler tells clients which optional features this server has.
type CapabilitiesHandler struct {
	speech  speechProbe
	version string
}

// NewCapabilitiesHandler creates a CapabilitiesHandler.
func NewCapabilitiesHandler(speech speechProbe, version string) *CapabilitiesHandler {
	return &CapabilitiesHandler{speech: speech, version: version}
}

type capabilitiesResponse struct {
	Speech    bool   `json:"speech"`
	WebSearch bool   `json:"webSearch"`
	Version   string `json:"version"`
}

// Get handles GET /api/capabilities.
func (h *CapabilitiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, capabilitiesResponse{
		Speech:    h.speech.Available(),
		WebSearch: true,
		Version:   h.version,
	})
}
