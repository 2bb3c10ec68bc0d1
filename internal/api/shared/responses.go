package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/taskboard/api/internal/query"
	"github.com/taskboard/api/internal/redact"
)

// Envelope is the uniform response body for every endpoint:
// {message, data}, with opts echoing the resolved query descriptor on
// list responses. Error responses carry an empty data array.
type Envelope struct {
	Message string            `json:"message"`
	Data    any               `json:"data"`
	Opts    *query.Descriptor `json:"opts,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithData writes a success envelope with the given message and data.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	RespondWithJSON(w, r, status, Envelope{Message: message, Data: data})
}

// RespondWithList writes a success envelope for list endpoints, echoing
// the resolved descriptor in opts.
func RespondWithList(w http.ResponseWriter, r *http.Request, message string, data any, opts *query.Descriptor) {
	RespondWithJSON(w, r, http.StatusOK, Envelope{Message: message, Data: data, Opts: opts})
}

// RespondWithError writes an error envelope with the given status code
// and message. Error responses always carry an empty data array.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, Envelope{Message: message, Data: []any{}})
}

// RespondWithErrorAndLog writes an error envelope and also logs the
// detailed error. The full error is logged (redacted) but only the safe
// message is exposed to the client.
//
// Log level strategy: 5xx errors at ERROR level, everything else at DEBUG.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, status int, userMessage string, err error) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, Envelope{Message: userMessage, Data: []any{}})
}
