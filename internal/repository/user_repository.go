package repository

import (
	"strings"
	"sync"
	"time"

	"nextstep_backend/internal/model"
	"nextstep_backend/internal/util"
)

// UserRepository is the in-memory user table. Secondary indexes keep
// case-insensitive username/email uniqueness and referral-code lookup O(1).
// Uniqueness checks happen under the same lock as the insert.
type UserRepository struct {
	mu             sync.RWMutex
	users          map[int]*model.User
	byUsername     map[string]int
	byEmail        map[string]int
	byReferralCode map[string]int
	nextID         int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:          make(map[int]*model.User),
		byUsername:     make(map[string]int),
		byEmail:        make(map[string]int),
		byReferralCode: make(map[string]int),
		nextID:         1,
	}
}

func (r *UserRepository) FindByID(id int) (model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return model.User{}, false
	}
	return *u, true
}

func (r *UserRepository) FindByUsername(username string) (model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byUsername[strings.ToLower(username)]
	if !ok {
		return model.User{}, false
	}
	return *r.users[id], true
}

func (r *UserRepository) FindByEmail(email string) (model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return model.User{}, false
	}
	return *r.users[id], true
}

func (r *UserRepository) FindByReferralCode(code string) (model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byReferralCode[code]
	if !ok {
		return model.User{}, false
	}
	return *r.users[id], true
}

// Create inserts the user, assigning ID and CreatedAt. The caller provides
// the already-hashed password and a referral code that is unique by
// construction; duplicates on username/email are rejected here so the check
// and the insert cannot interleave with another registration.
func (r *UserRepository) Create(u model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	username := strings.ToLower(u.Username)
	email := strings.ToLower(u.Email)
	if _, exists := r.byUsername[username]; exists {
		return model.User{}, util.ErrUsernameTaken
	}
	if _, exists := r.byEmail[email]; exists {
		return model.User{}, util.ErrEmailTaken
	}

	u.ID = r.nextID
	r.nextID++
	u.Points = 0
	u.CreatedAt = time.Now()

	stored := u
	r.users[stored.ID] = &stored
	r.byUsername[username] = stored.ID
	r.byEmail[email] = stored.ID
	r.byReferralCode[stored.ReferralCode] = stored.ID

	return u, nil
}

// AddPoints credits delta points to the user and returns the updated row.
func (r *UserRepository) AddPoints(id int, delta int) (model.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return model.User{}, false
	}
	u.Points += delta
	return *u, true
}
