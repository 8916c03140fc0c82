package repository

import (
	"sort"
	"sync"

	"nextstep_backend/internal/model"
)

type ModuleRepository struct {
	mu      sync.RWMutex
	modules map[int]*model.Module
	nextID  int
}

func NewModuleRepository() *ModuleRepository {
	return &ModuleRepository{
		modules: make(map[int]*model.Module),
		nextID:  1,
	}
}

func (r *ModuleRepository) Create(m model.Module) model.Module {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.nextID
	r.nextID++
	stored := m
	r.modules[stored.ID] = &stored
	return m
}

func (r *ModuleRepository) FindByID(id int) (model.Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[id]
	if !ok {
		return model.Module{}, false
	}
	return *m, true
}

// All returns every module ordered by the curriculum sequence.
func (r *ModuleRepository) All() []model.Module {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Module, 0, len(r.modules))
	for _, m := range r.modules {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (r *ModuleRepository) FindByCategory(category string) []model.Module {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.Module{}
	for _, m := range r.modules {
		if m.Category == category {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
