package chatsdk

import "time"

// RegisterRequest is the body for account registration. Email is optional;
// the server uses it only to decide whether the account gets the admin role.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changeUsernameRequest struct {
	Username string `json:"username"`
}

type postMessageRequest struct {
	Text string `json:"text"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// FeedMessage is one entry of the global feed, joined with the author's
// current username.
type FeedMessage struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
