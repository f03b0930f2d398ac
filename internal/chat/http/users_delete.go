package http

import (
	"net/http"
	"strconv"

	"github.com/bvpstudios/verzechat/internal/chat/service"
	"github.com/bvpstudios/verzechat/pkg/httpx"
	"github.com/bvpstudios/verzechat/pkg/slogx"
)

type DeleteUserHandler struct {
	UserService *service.UserService
}

// ServeHTTP hard-deletes a user by id. Admin only.
//
//	@Summary		Delete a user
//	@Description	Permanently removes the target account. The target's messages keep their author reference and drop out of the feed. Requires the admin role; deleting an id that does not exist still reports success.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Target user id"
//	@Success		200	{object}	MessageResponse	"User deleted"
//	@Failure		400	{object}	ErrorResponse	"Malformed user id"
//	@Failure		401	{object}	ErrorResponse	"Missing or invalid token"
//	@Failure		403	{object}	ErrorResponse	"Caller is not an admin"
//	@Failure		500	{object}	ErrorResponse	"Internal server error"
//	@Router			/api/users/{id} [delete].
func (h *DeleteUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	targetID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.BadRequest("Invalid user id").WriteError(w)
		return
	}

	if err := h.UserService.Delete(ctx, targetID); err != nil {
		log.Error("user deletion failed", "target_id", targetID, "err", err)
		httpx.ErrServerError.WriteError(w)
		return
	}

	caller, _ := httpx.IdentityFromContext(ctx)
	log.Info("user deleted", "target_id", targetID, "deleted_by", caller.ID)
	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "User deleted"})
}
