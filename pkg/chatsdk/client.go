package chatsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the VerzeChat service. It provides the
// unauthenticated operations and creates authenticated Sessions via Login.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new chat service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new account. The server assigns the admin role when the
// email is on its allow-list, user otherwise.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	resp, err := c.postJSON(ctx, "/api/register", req)
	if err != nil {
		return err
	}

	var body messageResponse
	return decodeJSON(resp, &body, http.StatusOK)
}

// Login exchanges credentials for a Session holding a bearer token. The
// token is valid for two hours; there is no refresh.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	resp, err := c.postJSON(ctx, "/api/login", loginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var body tokenResponse
	if err := decodeJSON(resp, &body, http.StatusOK); err != nil {
		return nil, err
	}

	return &Session{client: c, token: body.Token}, nil
}

// NewSessionFromToken wraps an existing session token, for callers that
// stored a token from an earlier Login.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// ListMessages returns the latest feed window in chronological order. No
// authentication required.
func (c *Client) ListMessages(ctx context.Context) ([]FeedMessage, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/chat", nil, nil)
	if err != nil {
		return nil, err
	}

	var feed []FeedMessage
	if err := decodeJSON(resp, &feed, http.StatusOK); err != nil {
		return nil, err
	}

	return feed, nil
}
