package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ADNAN-ZEYA/Website-Builder/internal/redact"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Detail  string `json:"detail"`
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response carrying the given detail
// string, tagged with the request trace ID when one exists.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	traceID := GetTraceID(r.Context())

	// 5xx responses are an operational signal, 4xx is routine client noise.
	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.LogAttrs(r.Context(), level, "sending error response",
		slog.Int("status_code", status),
		slog.String("detail", redact.String(detail)),
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, ErrorResponse{
		Detail:  detail,
		TraceID: traceID,
	})
}
