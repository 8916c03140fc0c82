package service

import (
	"context"
	"testing"

	"nextstep_backend/internal/config"
	"nextstep_backend/internal/model"
	"nextstep_backend/internal/repository"
	"nextstep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type learningFixture struct {
	svc    *LearningService
	users  *repository.UserRepository
	module model.Module
	userID int
}

func newLearningFixture(t *testing.T) *learningFixture {
	t.Helper()

	users := repository.NewUserRepository()
	modules := repository.NewModuleRepository()
	achievements := repository.NewAchievementRepository()
	progress := repository.NewProgressRepository()

	user, err := users.Create(model.User{Username: "jamie", Email: "jamie@example.com"})
	require.NoError(t, err)

	module := modules.Create(model.Module{
		Title:    "Career Exploration Fundamentals",
		Category: "Career Exploration",
		Duration: 45,
		Points:   250,
		Order:    1,
		IsActive: true,
	})

	achievements.Create(model.Achievement{
		Title:       "Career Explorer",
		Points:      250,
		Requirement: "Complete Career Exploration Fundamentals module",
	})

	return &learningFixture{
		svc:    NewLearningService(modules, progress, achievements, users),
		users:  users,
		module: module,
		userID: user.ID,
	}
}

func TestUpdateProgressRequiresKnownModule(t *testing.T) {
	f := newLearningFixture(t)

	_, err := f.svc.UpdateProgress(f.userID, 999, 50, false)
	assert.ErrorIs(t, err, util.ErrModuleNotFound)
}

func TestPartialProgressAwardsNothing(t *testing.T) {
	f := newLearningFixture(t)

	row, err := f.svc.UpdateProgress(f.userID, f.module.ID, 60, false)
	require.NoError(t, err)
	assert.Equal(t, 60, row.Progress)
	assert.False(t, row.IsCompleted)

	user, _ := f.users.FindByID(f.userID)
	assert.Equal(t, 0, user.Points)
}

func TestCompletionAwardsModuleAndAchievementPoints(t *testing.T) {
	f := newLearningFixture(t)

	row, err := f.svc.UpdateProgress(f.userID, f.module.ID, 100, true)
	require.NoError(t, err)
	assert.True(t, row.IsCompleted)

	user, _ := f.users.FindByID(f.userID)
	// 250 for the module plus 250 for the matching achievement.
	assert.Equal(t, 500, user.Points)

	unlocked := f.svc.Achievements.ForUser(f.userID)
	require.Len(t, unlocked, 1)
	assert.Equal(t, "Career Explorer", unlocked[0].Title)
}

// Resubmitting 100% credits the module points again on every call; only the
// achievement award is one-shot.
func TestRepeatedCompletionCreditsModulePointsAgain(t *testing.T) {
	f := newLearningFixture(t)

	_, err := f.svc.UpdateProgress(f.userID, f.module.ID, 100, true)
	require.NoError(t, err)
	_, err = f.svc.UpdateProgress(f.userID, f.module.ID, 100, true)
	require.NoError(t, err)

	user, _ := f.users.FindByID(f.userID)
	assert.Equal(t, 750, user.Points)

	assert.Len(t, f.svc.Achievements.ForUser(f.userID), 1)
}

func TestHundredPercentWithoutCompletedFlagAwardsNothing(t *testing.T) {
	f := newLearningFixture(t)

	_, err := f.svc.UpdateProgress(f.userID, f.module.ID, 100, false)
	require.NoError(t, err)

	user, _ := f.users.FindByID(f.userID)
	assert.Equal(t, 0, user.Points)
}

func TestCareerGenerationGate(t *testing.T) {
	users := repository.NewUserRepository()
	modules := repository.NewModuleRepository()
	progress := repository.NewProgressRepository()
	careers := repository.NewCareerRepository()
	ai := NewAIService(config.AIConfig{})

	user, err := users.Create(model.User{Username: "jamie", Email: "jamie@example.com"})
	require.NoError(t, err)

	var ids []int
	for _, title := range []string{"A", "B", "C"} {
		m := modules.Create(model.Module{Title: title, Category: "Skill Building", Points: 100})
		ids = append(ids, m.ID)
	}

	svc := NewCareerService(careers, progress, modules, ai)

	progress.Upsert(user.ID, ids[0], 100)
	progress.Upsert(user.ID, ids[1], 100)
	_, err = svc.Generate(context.Background(), user.ID)
	assert.ErrorIs(t, err, util.ErrNotEnoughModules)

	progress.Upsert(user.ID, ids[2], 100)
	saved, err := svc.Generate(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, saved, 3)
	assert.Equal(t, user.ID, saved[0].UserID)
	assert.False(t, saved[0].CreatedAt.IsZero())

	assert.Len(t, svc.Recommendations(user.ID), 3)
}
