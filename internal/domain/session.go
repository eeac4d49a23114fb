package domain

import "time"

// Session binds an opaque bearer token to a user. A token stays valid until
// its row is deleted; there is no expiry column and no revocation endpoint.
// A user may hold any number of concurrent sessions.
type Session struct {
	Token     string    `json:"-" db:"token"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
