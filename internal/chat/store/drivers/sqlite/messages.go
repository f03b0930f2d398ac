package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bvpstudios/verzechat/internal/chat/domain"
)

type messagesRepo struct {
	db *sql.DB
}

func (r *messagesRepo) CreateMessage(ctx context.Context, userID int64, text string) (domain.Message, error) {
	m := domain.Message{UserID: userID, Text: text}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO messages (user_id, text)
		VALUES (?, ?)
		RETURNING id, created_at`,
		userID, text,
	)
	if err := row.Scan(&m.ID, &m.CreatedAt); err != nil {
		return domain.Message{}, fmt.Errorf("insert message: %w", err)
	}
	return m, nil
}

// ListLatest returns the newest messages first (descending id). The inner
// join drops messages whose author was hard-deleted, so a dangling user_id
// never reaches the caller.
func (r *messagesRepo) ListLatest(ctx context.Context, limit int) ([]domain.FeedMessage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT messages.id, users.username, messages.text, messages.created_at
		FROM messages
		JOIN users ON users.id = messages.user_id
		ORDER BY messages.id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var out []domain.FeedMessage
	for rows.Next() {
		var m domain.FeedMessage
		if err := rows.Scan(&m.ID, &m.Username, &m.Text, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
