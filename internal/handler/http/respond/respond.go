// Package respond writes JSON responses and maps errors onto safe client messages.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// JSON writes v as JSON with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes err's message verbatim. Use it only for client errors.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, ErrorBody{Error: err.Error()})
}

// SafeError writes err for 4xx codes. For 5xx codes the message is replaced
// by the status text and the sanitized error is logged instead.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	if code < 500 {
		Error(w, code, err)
		return
	}
	slog.Default().Error("request failed",
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, ErrorBody{Error: strings.ToLower(http.StatusText(code))})
}

var dsnPassword = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)

// SanitizeError masks credentials embedded in connection strings.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return dsnPassword.ReplaceAllString(err.Error(), "://$1:****@")
}

