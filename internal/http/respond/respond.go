// Package respond is the single formatter for API responses. Every route,
// success or failure, goes through the same envelope; server-side detail is
// logged here and never leaks to the client in production.
package respond

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/insightboard/insightboard-be/internal/logging"
)

// Envelope is the standard API response wrapper used across handlers.
// StatusCode and Stack only appear on errors; Stack only outside production.
type Envelope struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode,omitempty"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Stack      string `json:"stack,omitempty"`
}

// Responder writes envelopes. It carries the injected logger and knows whether
// stack traces may be exposed.
type Responder struct {
	log          logging.Logger
	includeStack bool
}

// New constructs a Responder. includeStack must be false in production.
func New(log logging.Logger, includeStack bool) *Responder {
	return &Responder{log: log, includeStack: includeStack}
}

// JSON writes a success response using the common envelope.
func (rs *Responder) JSON(w http.ResponseWriter, status int, message string, data any) {
	rs.write(w, status, Envelope{Success: true, Message: message, Data: data})
}

// Error writes an error response with the shared envelope structure.
func (rs *Responder) Error(w http.ResponseWriter, status int, message string) {
	env := Envelope{Success: false, StatusCode: status, Message: message}
	if rs.includeStack {
		env.Stack = string(debug.Stack())
	}
	rs.write(w, status, env)
}

// Internal logs the full error server-side and returns a redacted message.
func (rs *Responder) Internal(w http.ResponseWriter, r *http.Request, err error, message string) {
	rs.log.Error(r.Context(), "internal error", "error", err, "path", r.URL.Path)
	rs.Error(w, http.StatusInternalServerError, message)
}

func (rs *Responder) write(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		rs.log.Error(context.Background(), "respond: encode payload failed", "error", err)
	}
}
