package repository

import (
	"sort"
	"sync"
	"time"

	"nextstep_backend/internal/model"
)

type unlockKey struct {
	UserID        int
	AchievementID int
}

// AchievementRepository holds both the achievement catalog and the per-user
// unlock rows, so the idempotent-unlock check and the insert share one lock.
type AchievementRepository struct {
	mu           sync.RWMutex
	achievements map[int]*model.Achievement
	unlocks      map[int]*model.UserAchievement
	byPair       map[unlockKey]int
	nextID       int
	nextUnlockID int
}

func NewAchievementRepository() *AchievementRepository {
	return &AchievementRepository{
		achievements: make(map[int]*model.Achievement),
		unlocks:      make(map[int]*model.UserAchievement),
		byPair:       make(map[unlockKey]int),
		nextID:       1,
		nextUnlockID: 1,
	}
}

func (r *AchievementRepository) Create(a model.Achievement) model.Achievement {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.nextID
	r.nextID++
	stored := a
	r.achievements[stored.ID] = &stored
	return a
}

func (r *AchievementRepository) All() []model.Achievement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Achievement, 0, len(r.achievements))
	for _, a := range r.achievements {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *AchievementRepository) FindByID(id int) (model.Achievement, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.achievements[id]
	if !ok {
		return model.Achievement{}, false
	}
	return *a, true
}

// ForUser returns the achievements the user has unlocked.
func (r *AchievementRepository) ForUser(userID int) []model.Achievement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.Achievement{}
	for _, ua := range r.unlocks {
		if ua.UserID != userID {
			continue
		}
		if a, ok := r.achievements[ua.AchievementID]; ok {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Unlock records the (user, achievement) pair once. A repeated unlock
// returns the existing row with created=false; the caller awards points only
// when created is true.
func (r *AchievementRepository) Unlock(userID, achievementID int) (model.UserAchievement, bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.achievements[achievementID]; !ok {
		return model.UserAchievement{}, false, false
	}

	key := unlockKey{userID, achievementID}
	if id, ok := r.byPair[key]; ok {
		return *r.unlocks[id], false, true
	}

	ua := &model.UserAchievement{
		ID:            r.nextUnlockID,
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    time.Now(),
	}
	r.nextUnlockID++
	r.unlocks[ua.ID] = ua
	r.byPair[key] = ua.ID

	return *ua, true, true
}
