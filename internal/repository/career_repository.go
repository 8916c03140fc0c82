package repository

import (
	"sync"
	"time"

	"nextstep_backend/internal/model"
)

type CareerRepository struct {
	mu     sync.RWMutex
	recs   map[int]*model.CareerRecommendation
	byUser map[int][]int
	nextID int
}

func NewCareerRepository() *CareerRepository {
	return &CareerRepository{
		recs:   make(map[int]*model.CareerRecommendation),
		byUser: make(map[int][]int),
		nextID: 1,
	}
}

func (r *CareerRepository) Create(rec model.CareerRecommendation) model.CareerRecommendation {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.ID = r.nextID
	r.nextID++
	rec.CreatedAt = time.Now()
	stored := rec
	r.recs[stored.ID] = &stored
	r.byUser[stored.UserID] = append(r.byUser[stored.UserID], stored.ID)
	return rec
}

func (r *CareerRepository) ForUser(userID int) []model.CareerRecommendation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byUser[userID]
	out := make([]model.CareerRecommendation, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.recs[id])
	}
	return out
}
