package repository

import (
	"sort"
	"sync"

	"nextstep_backend/internal/model"
)

type ScholarshipRepository struct {
	mu           sync.RWMutex
	scholarships map[int]*model.Scholarship
	nextID       int
}

func NewScholarshipRepository() *ScholarshipRepository {
	return &ScholarshipRepository{
		scholarships: make(map[int]*model.Scholarship),
		nextID:       1,
	}
}

func (r *ScholarshipRepository) Create(s model.Scholarship) model.Scholarship {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = r.nextID
	r.nextID++
	stored := s
	r.scholarships[stored.ID] = &stored
	return s
}

func (r *ScholarshipRepository) All() []model.Scholarship {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Scholarship, 0, len(r.scholarships))
	for _, s := range r.scholarships {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
