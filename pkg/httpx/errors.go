package httpx

import (
	"fmt"
	"net/http"
)

// APIError is the wire form of every failure the API reports: an HTTP status
// code plus a human-readable message serialized as {"error": "..."}.
// It implements the error interface so handlers can return or wrap it.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Message is a human-readable description of the error
	Message string `json:"error"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	WriteJSON(w, e.StatusCode, map[string]string{"error": e.Message})
}

// Constructors for the five outcome classes the API distinguishes, plus the
// generic server failure. Handlers pick the message; the class picks the code.

func BadRequest(msg string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Message: msg}
}

func Unauthorized(msg string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Message: msg}
}

// ErrServerError is the catch-all failure for unexpected conditions. Handlers
// must never leak internal error strings to clients; log them and write this.
var ErrServerError = &APIError{
	StatusCode: http.StatusInternalServerError,
	Message:    "internal server error",
}
