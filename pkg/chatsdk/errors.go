package chatsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the common failure statuses. APIError wraps these so
// callers can match with errors.Is without inspecting status codes.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// APIError is a non-2xx response from the service, carrying the status code
// and the server's error message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("chat api error (status %d): %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	default:
		return nil
	}
}

// parseErrorResponse builds an APIError from a failure body. The service
// reports failures as {"error": "..."}; anything else falls back to the raw
// body so the caller still sees what the server said.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}

	return &APIError{StatusCode: resp.StatusCode, Message: string(body)}
}
