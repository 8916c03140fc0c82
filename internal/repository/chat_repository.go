package repository

import (
	"sync"
	"time"

	"nextstep_backend/internal/model"
)

// ChatRepository stores conversation turns per user. IDs are monotonic, so
// insertion order is creation order.
type ChatRepository struct {
	mu       sync.RWMutex
	messages map[int]*model.ChatMessage
	byUser   map[int][]int
	nextID   int
}

func NewChatRepository() *ChatRepository {
	return &ChatRepository{
		messages: make(map[int]*model.ChatMessage),
		byUser:   make(map[int][]int),
		nextID:   1,
	}
}

func (r *ChatRepository) Create(userID int, message string, isFromUser bool) model.ChatMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := &model.ChatMessage{
		ID:         r.nextID,
		UserID:     userID,
		Message:    message,
		IsFromUser: isFromUser,
		CreatedAt:  time.Now(),
	}
	r.nextID++
	r.messages[m.ID] = m
	r.byUser[userID] = append(r.byUser[userID], m.ID)
	return *m
}

// ForUser returns the user's messages oldest first.
func (r *ChatRepository) ForUser(userID int) []model.ChatMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byUser[userID]
	out := make([]model.ChatMessage, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.messages[id])
	}
	return out
}
