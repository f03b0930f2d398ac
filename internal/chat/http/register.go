package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bvpstudios/verzechat/internal/chat/service"
	"github.com/bvpstudios/verzechat/pkg/httpx"
	"github.com/bvpstudios/verzechat/pkg/slogx"
)

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles account registration.
//
//	@Summary		Register a new account
//	@Description	Creates a user with a unique (case-insensitive) username and a bcrypt-hashed password. Accounts whose email is on the admin allow-list receive the admin role.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration data"
//	@Success		200		{object}	MessageResponse	"Account created"
//	@Failure		400		{object}	ErrorResponse	"Missing or invalid username/password"
//	@Failure		409		{object}	ErrorResponse	"Username already exists"
//	@Failure		500		{object}	ErrorResponse	"Internal server error"
//	@Router			/api/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.BadRequest("Request body must be valid JSON").WriteError(w)
		return
	}

	user, err := h.UserService.Register(ctx, req.Username, req.Password, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			httpx.BadRequest("Username and password required").WriteError(w)
		case errors.Is(err, service.ErrInvalidUsername):
			httpx.BadRequest("Invalid username").WriteError(w)
		case errors.Is(err, service.ErrUsernameTaken):
			httpx.Conflict("Username or email already exists").WriteError(w)
		default:
			log.Error("registration failed", "err", err)
			httpx.ErrServerError.WriteError(w)
		}
		return
	}

	log.Info("account created", "user_id", user.ID, "role", user.Role)
	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Account created successfully"})
}
