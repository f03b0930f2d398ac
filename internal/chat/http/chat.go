package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bvpstudios/verzechat/internal/chat/domain"
	"github.com/bvpstudios/verzechat/internal/chat/service"
	"github.com/bvpstudios/verzechat/pkg/httpx"
	"github.com/bvpstudios/verzechat/pkg/slogx"
)

type ChatHandler struct {
	MessageService *service.MessageService
}

// HandlePost appends a message to the global feed.
//
//	@Summary		Post a message
//	@Description	Posts to the single global feed as the authenticated user. Text is trimmed; empty messages are rejected.
//	@Tags			Chat
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PostMessageRequest	true	"Message text"
//	@Success		200		{object}	MessageResponse		"Message sent"
//	@Failure		400		{object}	ErrorResponse		"Empty message"
//	@Failure		401		{object}	ErrorResponse		"Missing or invalid token"
//	@Failure		500		{object}	ErrorResponse		"Internal server error"
//	@Router			/api/chat [post].
func (h *ChatHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.Unauthorized("Missing token").WriteError(w)
		return
	}

	var req PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.BadRequest("Request body must be valid JSON").WriteError(w)
		return
	}

	if _, err := h.MessageService.Post(ctx, id.ID, req.Text); err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			httpx.BadRequest("Empty message").WriteError(w)
			return
		}
		log.Error("post message failed", "user_id", id.ID, "err", err)
		httpx.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Message sent"})
}

// HandleList returns the latest feed window.
//
//	@Summary		List latest messages
//	@Description	Returns up to 50 of the most recent messages in chronological order, each joined with its author's current username. No authentication required.
//	@Tags			Chat
//	@Produce		json
//	@Success		200	{array}		domain.FeedMessage	"Messages, oldest of the window first"
//	@Failure		500	{object}	ErrorResponse		"Internal server error"
//	@Router			/api/chat [get].
func (h *ChatHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	feed, err := h.MessageService.ListLatest(ctx)
	if err != nil {
		log.Error("list messages failed", "err", err)
		httpx.ErrServerError.WriteError(w)
		return
	}

	if feed == nil {
		feed = []domain.FeedMessage{} // empty feed serializes as [], not null
	}
	httpx.WriteJSON(w, http.StatusOK, feed)
}
