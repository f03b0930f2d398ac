package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bvpstudios/verzechat/internal/chat/service"
	"github.com/bvpstudios/verzechat/pkg/httpx"
	"github.com/bvpstudios/verzechat/pkg/slogx"
)

type ChangeUsernameHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles username changes for the authenticated user.
//
//	@Summary		Change username
//	@Description	Renames the calling account. The new name must match ^[a-zA-Z0-9_.]{3,20}$ and be unused. Outstanding session tokens keep the old username claim until they expire.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ChangeUsernameRequest	true	"New username"
//	@Success		200		{object}	MessageResponse			"Username updated"
//	@Failure		400		{object}	ErrorResponse			"Invalid username format"
//	@Failure		401		{object}	ErrorResponse			"Missing or invalid token"
//	@Failure		409		{object}	ErrorResponse			"Username taken"
//	@Failure		500		{object}	ErrorResponse			"Internal server error"
//	@Router			/api/change-username [post].
func (h *ChangeUsernameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.Unauthorized("Missing token").WriteError(w)
		return
	}

	var req ChangeUsernameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.BadRequest("Request body must be valid JSON").WriteError(w)
		return
	}

	newName, err := h.UserService.ChangeUsername(ctx, id.ID, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUsername):
			httpx.BadRequest("Invalid username").WriteError(w)
		case errors.Is(err, service.ErrUsernameTaken):
			httpx.Conflict("Username taken").WriteError(w)
		default:
			log.Error("username change failed", "user_id", id.ID, "err", err)
			httpx.ErrServerError.WriteError(w)
		}
		return
	}

	log.Info("username changed", "user_id", id.ID, "username", newName)
	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Username updated"})
}
