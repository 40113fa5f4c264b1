// Package respond renders the JSON envelopes shared by every endpoint.
// Internal error causes are sanitized and logged, never returned to users.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"clinic-records/internal/common/apperror"
	"clinic-records/internal/common/pagination"
)

// TimestampFormat is the layout of the timestamp field in every envelope.
const TimestampFormat = "2006-01-02 15:04:05"

// now is replaced in tests.
var now = time.Now

// Timestamp returns the current time formatted for an envelope.
func Timestamp() string {
	return now().Format(TimestampFormat)
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; only logging is possible.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// OK writes a 200 success envelope.
func OK[T any](w http.ResponseWriter, message string, data T) {
	JSON(w, http.StatusOK, Success(http.StatusOK, message, data))
}

// Created writes a 201 success envelope.
func Created[T any](w http.ResponseWriter, message string, data T) {
	JSON(w, http.StatusCreated, Success(http.StatusCreated, message, data))
}

// Page writes a 200 paginated envelope.
func Page[T any](w http.ResponseWriter, message string, data []T, meta pagination.Metadata) {
	JSON(w, http.StatusOK, Paginated(http.StatusOK, message, data, meta))
}

// NoContent writes a 204 response with an empty body.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error renders err as an error envelope. Errors that are not
// *apperror.Error are treated as internal errors. 5xx causes are logged
// with credentials masked.
func Error(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	appErr := apperror.From(err)
	if appErr.Status >= http.StatusInternalServerError {
		slog.Default().Error("internal server error",
			slog.String("status", http.StatusText(appErr.Status)),
			slog.Int("code", appErr.Status),
			slog.String("user_message", appErr.Message),
			slog.String("error", SanitizeError(appErr.Err)))
	}
	JSON(w, appErr.Status, Failure(appErr.Status, appErr.Code, appErr.Message, appErr.Details))
}
