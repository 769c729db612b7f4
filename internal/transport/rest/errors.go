package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/huayu-backend/internal/domain"
	"github.com/heartmarshall/huayu-backend/pkg/ctxutil"
)

const maxBodyBytes = 64 << 10

// errorResponse is the JSON body of every non-2xx API response.
type errorResponse struct {
	Error  string              `json:"error"`
	Code   string              `json:"code"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// writeServiceError maps a domain error onto an HTTP status and a stable code.
// Generator failures get a generic message; the cause is only logged.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	resp := errorResponse{Error: err.Error()}
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrValidation):
		status, resp.Code = http.StatusBadRequest, "VALIDATION"
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			resp.Fields = ve.Errors
		}
	case errors.Is(err, domain.ErrNotFound):
		status, resp.Code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrBusy):
		status, resp.Code = http.StatusConflict, "BUSY"
	case errors.Is(err, domain.ErrQuotaExceeded):
		status, resp.Code = http.StatusTooManyRequests, "QUOTA_EXCEEDED"
	case errors.Is(err, domain.ErrSpeechUnavailable):
		status, resp.Code = http.StatusNotImplemented, "SPEECH_UNAVAILABLE"
	case domain.IsGenerationFailure(err):
		log.WarnContext(r.Context(), "generation failed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		status, resp.Code = http.StatusBadGateway, "GENERATION_FAILED"
		resp.Error = "the text generator did not return a usable answer, please try again"
	default:
		log.ErrorContext(r.Context(), "unexpected error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		resp.Code = "INTERNAL"
		resp.Error = "internal server error"
	}

	writeJSON(w, status, resp)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message, Code: "BAD_REQUEST"})
}

// decodeJSON reads a size-capped JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
