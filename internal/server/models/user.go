package models

import "time"

// User is a durable identity created lazily for every unseen session token.
// Users are never deleted.
type User struct {
	ID        int64
	SessionID string
	CreatedAt time.Time
}
