package web

// errors.go provides unified error response handling for the web layer.
//
// Errors are logged with full technical detail server-side and returned
// to clients as sanitized messages: internal file paths and session IDs
// never leave the process.

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// absPathPattern matches absolute filesystem paths in error text.
var absPathPattern = regexp.MustCompile(`(/[\w.\-]+)+`)

// respondError logs the technical error and writes a sanitized
// response in the format the client expects.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	requestID := middleware.GetReqID(r.Context())

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"request_id", requestID,
	)

	if wantsJSON(r) {
		writeErrorJSON(w, statusCode, sanitizeErrorMessage(err.Error()))
		return
	}
	http.Error(w, sanitizeErrorMessage(err.Error()), statusCode)
}

// writeErrorJSON writes a JSON error response.
func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}

// sanitizeErrorMessage strips internals from a message before it goes
// to a client: filesystem paths are masked and the text is truncated.
func sanitizeErrorMessage(msg string) string {
	msg = absPathPattern.ReplaceAllString(msg, "[path]")
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	return msg
}

// wantsJSON checks if the client prefers a JSON response.
func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	contentType := r.Header.Get("Content-Type")

	if strings.Contains(accept, "application/json") {
		return true
	}
	if strings.Contains(contentType, "application/json") {
		return true
	}
	// A form submission comes from a server-rendered page and gets a
	// redirect, even on API routes.
	if strings.Contains(contentType, "application/x-www-form-urlencoded") ||
		strings.Contains(contentType, "multipart/form-data") {
		return false
	}
	// Other API requests default to JSON
	return strings.HasPrefix(r.URL.Path, "/api/")
}
