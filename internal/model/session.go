package model

import (
	"time"
)

// Session maps an opaque bearer token to a user. Expiry is checked
// lazily at lookup; expired rows are indistinguishable from missing ones.
type Session struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
