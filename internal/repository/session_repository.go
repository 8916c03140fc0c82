package repository

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"nextstep_backend/internal/model"
)

// SessionRepository issues and resolves opaque bearer tokens. Tokens carry
// 256 bits of entropy; expiry is checked lazily at lookup so an expired
// session behaves exactly like a missing one.
type SessionRepository struct {
	mu      sync.RWMutex
	byToken map[string]*model.Session
	nextID  int
	ttl     time.Duration
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		byToken: make(map[string]*model.Session),
		nextID:  1,
		ttl:     ttl,
	}
}

func (r *SessionRepository) Create(userID int) (model.Session, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return model.Session{}, err
	}
	token := hex.EncodeToString(buf)

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	s := &model.Session{
		ID:        r.nextID,
		UserID:    userID,
		Token:     token,
		ExpiresAt: now.Add(r.ttl),
		CreatedAt: now,
	}
	r.nextID++
	r.byToken[token] = s

	return *s, nil
}

func (r *SessionRepository) FindByToken(token string) (model.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byToken[token]
	if !ok || !s.ExpiresAt.After(time.Now()) {
		return model.Session{}, false
	}
	return *s, true
}

// Delete removes the session; deleting an absent token is a no-op.
func (r *SessionRepository) Delete(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byToken, token)
}
