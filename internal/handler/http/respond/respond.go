// Package respond provides utilities for sending HTTP responses in JSON format.
// Every body is wrapped in Envelope. Error helpers sanitize messages so
// internal details never reach the client.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"simple-board/pkg/sanitize"
)

// MsgInternalError is the message of every 5xx envelope.
const MsgInternalError = "internal server error"

// Envelope is the uniform response body.
// A nil Result omits the key entirely; a non-nil pointer to an empty slice
// is still encoded as [].
type Envelope[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Result  *T     `json:"result,omitempty"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers are already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Success writes {status:true, message, result}.
func Success[T any](w http.ResponseWriter, code int, message string, result T) {
	JSON(w, code, Envelope[T]{Status: true, Message: message, Result: &result})
}

// Message writes {status:true, message} without a result.
func Message(w http.ResponseWriter, code int, message string) {
	JSON(w, code, Envelope[struct{}]{Status: true, Message: message})
}

// Failure writes {status:false, message, result}.
func Failure[T any](w http.ResponseWriter, code int, message string, result T) {
	JSON(w, code, Envelope[T]{Status: false, Message: message, Result: &result})
}

// Fail writes {status:false, message} without a result.
func Fail(w http.ResponseWriter, code int, message string) {
	JSON(w, code, Envelope[struct{}]{Status: false, Message: message})
}

// SafeError sanitizes error messages before returning them to users.
// 5xx errors and anything that does not look like a user-facing message are
// returned as MsgInternalError, with the masked details logged for debugging.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()

	// messages that are fine to show users
	safeErrors := []string{
		"required",
		"invalid",
		"not found",
		"must be",
		"cannot be",
		"too large",
	}

	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, safe := range safeErrors {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}

	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		Fail(w, code, msg)
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", sanitize.Error(err)))
	Fail(w, code, MsgInternalError)
}
