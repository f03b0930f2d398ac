package http

// Request and response bodies for the JSON API. Failures use
// httpx.APIError's {"error": "..."} shape.

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ChangeUsernameRequest struct {
	Username string `json:"username"`
}

type PostMessageRequest struct {
	Text string `json:"text"`
}

// MessageResponse is the generic confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a freshly issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse documents the failure shape for swagger; handlers write it
// through httpx.APIError.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
