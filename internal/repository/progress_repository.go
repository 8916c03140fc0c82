package repository

import (
	"sort"
	"sync"
	"time"

	"nextstep_backend/internal/model"
)

type progressKey struct {
	UserID   int
	ModuleID int
}

// ProgressRepository keeps at most one row per (user, module) pair: an arena
// map holds the rows, a pair index enforces the uniqueness invariant.
type ProgressRepository struct {
	mu     sync.RWMutex
	rows   map[int]*model.UserProgress
	byPair map[progressKey]int
	nextID int
}

func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{
		rows:   make(map[int]*model.UserProgress),
		byPair: make(map[progressKey]int),
		nextID: 1,
	}
}

func (r *ProgressRepository) FindByUser(userID int) []model.UserProgress {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.UserProgress{}
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *ProgressRepository) FindByUserAndModule(userID, moduleID int) (model.UserProgress, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byPair[progressKey{userID, moduleID}]
	if !ok {
		return model.UserProgress{}, false
	}
	return *r.rows[id], true
}

// Upsert creates the row for the pair on first contact and mutates it in
// place afterwards. IsCompleted tracks progress == 100; CompletedAt is
// stamped on a 100% update, LastAccessedAt on every call.
func (r *ProgressRepository) Upsert(userID, moduleID, progress int) model.UserProgress {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	key := progressKey{userID, moduleID}

	if id, ok := r.byPair[key]; ok {
		row := r.rows[id]
		row.Progress = progress
		row.IsCompleted = progress == 100
		if progress == 100 {
			t := now
			row.CompletedAt = &t
		}
		row.LastAccessedAt = now
		return *row
	}

	row := &model.UserProgress{
		ID:             r.nextID,
		UserID:         userID,
		ModuleID:       moduleID,
		Progress:       progress,
		IsCompleted:    progress == 100,
		LastAccessedAt: now,
	}
	r.nextID++
	r.rows[row.ID] = row
	r.byPair[key] = row.ID
	return *row
}

// CompletedModuleIDs returns the modules the user has finished, in
// completion-row order.
func (r *ProgressRepository) CompletedModuleIDs(userID int) []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := []model.UserProgress{}
	for _, row := range r.rows {
		if row.UserID == userID && row.IsCompleted {
			rows = append(rows, *row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	ids := make([]int, len(rows))
	for i, row := range rows {
		ids[i] = row.ModuleID
	}
	return ids
}
