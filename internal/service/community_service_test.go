package service

import (
	"testing"

	"nextstep_backend/internal/model"
	"nextstep_backend/internal/repository"
	"nextstep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommunityFixture(t *testing.T) (*CommunityService, int, int) {
	t.Helper()

	users := repository.NewUserRepository()
	modules := repository.NewModuleRepository()
	community := repository.NewCommunityRepository()

	author, err := users.Create(model.User{Username: "author", Email: "author@example.com"})
	require.NoError(t, err)
	reader, err := users.Create(model.User{Username: "reader", Email: "reader@example.com"})
	require.NoError(t, err)

	return NewCommunityService(community, modules, users), author.ID, reader.ID
}

func TestCreatePostValidatesModuleReference(t *testing.T) {
	svc, authorID, _ := newCommunityFixture(t)

	missing := 99
	_, err := svc.CreatePost(authorID, CreatePostInput{Title: "t", Content: "c", ModuleID: &missing})
	assert.ErrorIs(t, err, util.ErrModuleNotFound)

	module := svc.Modules.Create(model.Module{Title: "Interview Skills Mastery", Category: "Skill Building"})
	view, err := svc.CreatePost(authorID, CreatePostInput{Title: "t", Content: "c", ModuleID: &module.ID})
	require.NoError(t, err)
	require.NotNil(t, view.ModuleID)
	assert.Equal(t, module.ID, *view.ModuleID)
	assert.False(t, view.IsLiked)
}

func TestCommentingAwardsPoints(t *testing.T) {
	svc, authorID, readerID := newCommunityFixture(t)

	post, err := svc.CreatePost(authorID, CreatePostInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	comment, err := svc.CreateComment(readerID, post.ID, "nice post")
	require.NoError(t, err)
	assert.Equal(t, readerID, comment.UserID)

	reader, _ := svc.Users.FindByID(readerID)
	assert.Equal(t, CommentRewardPoints, reader.Points)

	_, err = svc.CreateComment(readerID, 999, "ghost")
	assert.ErrorIs(t, err, util.ErrPostNotFound)

	// No points for the failed attempt.
	reader, _ = svc.Users.FindByID(readerID)
	assert.Equal(t, CommentRewardPoints, reader.Points)
}

func TestPostViewsCarryCallerLikeFlag(t *testing.T) {
	svc, authorID, readerID := newCommunityFixture(t)

	post, err := svc.CreatePost(authorID, CreatePostInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	liked, err := svc.Like(post.ID, readerID)
	require.NoError(t, err)
	assert.True(t, liked.IsLiked)
	assert.Equal(t, 1, liked.LikesCount)

	_, err = svc.Like(post.ID, readerID)
	assert.ErrorIs(t, err, util.ErrAlreadyLiked)

	// The liker sees their flag, the author and guests do not.
	views := svc.Posts(readerID)
	require.Len(t, views, 1)
	assert.True(t, views[0].IsLiked)

	views = svc.Posts(authorID)
	assert.False(t, views[0].IsLiked)

	views = svc.Posts(0)
	assert.False(t, views[0].IsLiked)

	unliked, err := svc.Unlike(post.ID, readerID)
	require.NoError(t, err)
	assert.False(t, unliked.IsLiked)
	assert.Equal(t, 0, unliked.LikesCount)

	_, err = svc.Unlike(post.ID, readerID)
	assert.ErrorIs(t, err, util.ErrNotLiked)
}
