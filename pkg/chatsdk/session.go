package chatsdk

import (
	"context"
	"fmt"
	"net/http"
)

// Session is an authenticated handle on the chat service. Sessions are
// created by Client.Login or Client.NewSessionFromToken and are safe for
// concurrent use; the token is immutable for the session's lifetime.
type Session struct {
	client *Client
	token  string
}

// Token returns the raw bearer token, for callers that want to persist it.
func (s *Session) Token() string {
	return s.token
}

// PostMessage appends a message to the global feed as the session's user.
func (s *Session) PostMessage(ctx context.Context, text string) error {
	resp, err := s.postJSON(ctx, "/api/chat", postMessageRequest{Text: text})
	if err != nil {
		return err
	}

	var body messageResponse
	return decodeJSON(resp, &body, http.StatusOK)
}

// ChangeUsername renames the session's account. The session token keeps the
// old username claim until it expires; only the stored account changes.
func (s *Session) ChangeUsername(ctx context.Context, username string) error {
	resp, err := s.postJSON(ctx, "/api/change-username", changeUsernameRequest{Username: username})
	if err != nil {
		return err
	}

	var body messageResponse
	return decodeJSON(resp, &body, http.StatusOK)
}

// DeleteUser permanently removes the target account. Requires the admin
// role; the server reports success even when the id does not exist.
func (s *Session) DeleteUser(ctx context.Context, userID int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", userID), nil, nil)
	if err != nil {
		return err
	}

	var body messageResponse
	return decodeJSON(resp, &body, http.StatusOK)
}
