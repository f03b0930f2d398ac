package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/bvpstudios/verzechat/internal/chat/domain"
	"github.com/bvpstudios/verzechat/internal/chat/store"
)

// FeedLimit is the fixed number of messages the feed exposes. There is no
// pagination beyond this.
const FeedLimit = 50

// MessageService owns the global message feed.
type MessageService struct {
	Store store.Store
}

// Post appends a message to the feed. Text is trimmed first; a message that
// is empty after trimming is rejected before it reaches the store.
func (s *MessageService) Post(ctx context.Context, userID int64, text string) (domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Message{}, ErrEmptyMessage
	}

	msg, err := s.Store.Messages().CreateMessage(ctx, userID, text)
	if err != nil {
		return domain.Message{}, fmt.Errorf("post message: %w", err)
	}
	return msg, nil
}

// ListLatest returns the most recent FeedLimit messages in chronological
// order (oldest of the window first). An empty feed is a valid, empty slice.
func (s *MessageService) ListLatest(ctx context.Context) ([]domain.FeedMessage, error) {
	msgs, err := s.Store.Messages().ListLatest(ctx, FeedLimit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	// The store hands back newest-first; clients read top to bottom.
	slices.Reverse(msgs)
	return msgs, nil
}
