package domain

import "time"

type User struct {
	ID             int64     `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	HashedPassword string    `json:"-" db:"hashed_password"`
	RegisteredAt   time.Time `json:"registered_at" db:"registered_at"`
}

// Session is the server-side record behind a session cookie. Deleting it
// revokes the cookie even before the token expires.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
