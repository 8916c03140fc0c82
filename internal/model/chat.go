package model

import (
	"time"
)

// swagger:model ChatMessage
type ChatMessage struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	Message    string    `json:"message"`
	IsFromUser bool      `json:"isFromUser"`
	CreatedAt  time.Time `json:"createdAt"`
}
