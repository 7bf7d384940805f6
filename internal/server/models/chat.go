package models

import "time"

// Roles a chat message can be tagged with.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Chat struct {
	ID        int64
	UserID    int64
	Title     string
	CreatedAt time.Time
}

// Message is one entry of a chat. Messages are append-only and read back
// ordered by timestamp ascending.
type Message struct {
	ID        int64
	ChatID    int64
	Role      string
	Content   string
	Timestamp time.Time
}
