package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bvpstudios/verzechat/internal/chat/service"
	"github.com/bvpstudios/verzechat/pkg/httpx"
	"github.com/bvpstudios/verzechat/pkg/slogx"
)

type LoginHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles credential login.
//
//	@Summary		Log in
//	@Description	Verifies username and password and returns a session token valid for two hours. There is no refresh or revocation; clients log in again after expiry.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	TokenResponse	"Session token"
//	@Failure		400		{object}	ErrorResponse	"Malformed request body"
//	@Failure		401		{object}	ErrorResponse	"Wrong password"
//	@Failure		404		{object}	ErrorResponse	"User not found"
//	@Failure		500		{object}	ErrorResponse	"Internal server error"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.BadRequest("Request body must be valid JSON").WriteError(w)
		return
	}

	token, err := h.UserService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			httpx.NotFound("User not found").WriteError(w)
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Info("login rejected", "username", req.Username)
			httpx.Unauthorized("Invalid password").WriteError(w)
		default:
			log.Error("login failed", "err", err)
			httpx.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, TokenResponse{Token: token})
}
