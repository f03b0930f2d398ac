package domain

import "time"

// Message is a single entry in the global feed as stored. UserID references
// the author but is not enforced with a foreign key: a hard-deleted user
// leaves their messages behind with a dangling author reference.
type Message struct {
	ID        int64
	UserID    int64
	Text      string
	CreatedAt time.Time
}

// FeedMessage is a message joined with its author's current username, the
// shape the listing endpoint returns. Messages whose author no longer exists
// are not part of the feed.
type FeedMessage struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
