package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressUpsertCreatesSingleRowPerPair(t *testing.T) {
	repo := NewProgressRepository()

	first := repo.Upsert(1, 10, 40)
	second := repo.Upsert(1, 10, 80)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 80, second.Progress)

	rows := repo.FindByUser(1)
	require.Len(t, rows, 1)
	assert.Equal(t, 80, rows[0].Progress)
}

func TestProgressCompletionFlagTracksHundredPercent(t *testing.T) {
	repo := NewProgressRepository()

	row := repo.Upsert(1, 10, 99)
	assert.False(t, row.IsCompleted)

	row = repo.Upsert(1, 10, 100)
	assert.True(t, row.IsCompleted)
	require.NotNil(t, row.CompletedAt)

	// Dropping back below 100 clears the flag but keeps the stamp.
	row = repo.Upsert(1, 10, 50)
	assert.False(t, row.IsCompleted)
	assert.NotNil(t, row.CompletedAt)
}

func TestProgressCreateAtHundredLeavesCompletedAtUnset(t *testing.T) {
	repo := NewProgressRepository()

	row := repo.Upsert(1, 10, 100)
	assert.True(t, row.IsCompleted)
	assert.Nil(t, row.CompletedAt)

	// A second 100% submission stamps it.
	row = repo.Upsert(1, 10, 100)
	assert.NotNil(t, row.CompletedAt)
}

func TestCompletedModuleIDs(t *testing.T) {
	repo := NewProgressRepository()

	repo.Upsert(1, 10, 100)
	repo.Upsert(1, 11, 60)
	repo.Upsert(1, 12, 100)
	repo.Upsert(2, 13, 100)

	assert.Equal(t, []int{10, 12}, repo.CompletedModuleIDs(1))
	assert.Equal(t, []int{13}, repo.CompletedModuleIDs(2))
	assert.Empty(t, repo.CompletedModuleIDs(3))
}
