package repository

import (
	"testing"

	"nextstep_backend/internal/model"
	"nextstep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeUnlikeKeepsCounterConsistent(t *testing.T) {
	repo := NewCommunityRepository()
	post := repo.CreatePost(model.CommunityPost{UserID: 1, Title: "t", Content: "c"})

	liked, err := repo.Like(post.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.LikesCount)
	assert.True(t, repo.HasLiked(post.ID, 2))

	liked, err = repo.Like(post.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, liked.LikesCount)

	unliked, err := repo.Unlike(post.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, unliked.LikesCount)
	assert.False(t, repo.HasLiked(post.ID, 2))
}

func TestDuplicateLikeIsRejected(t *testing.T) {
	repo := NewCommunityRepository()
	post := repo.CreatePost(model.CommunityPost{UserID: 1, Title: "t", Content: "c"})

	_, err := repo.Like(post.ID, 2)
	require.NoError(t, err)

	_, err = repo.Like(post.ID, 2)
	assert.ErrorIs(t, err, util.ErrAlreadyLiked)

	got, _ := repo.FindPost(post.ID)
	assert.Equal(t, 1, got.LikesCount)
}

func TestRedundantUnlikeIsRejected(t *testing.T) {
	repo := NewCommunityRepository()
	post := repo.CreatePost(model.CommunityPost{UserID: 1, Title: "t", Content: "c"})

	_, err := repo.Unlike(post.ID, 2)
	assert.ErrorIs(t, err, util.ErrNotLiked)

	_, err = repo.Like(42, 2)
	assert.ErrorIs(t, err, util.ErrPostNotFound)
}

func TestCommentsRequireExistingPost(t *testing.T) {
	repo := NewCommunityRepository()
	post := repo.CreatePost(model.CommunityPost{UserID: 1, Title: "t", Content: "c"})

	_, err := repo.CreateComment(model.CommunityComment{PostID: 99, UserID: 2, Content: "hi"})
	assert.ErrorIs(t, err, util.ErrPostNotFound)

	first, err := repo.CreateComment(model.CommunityComment{PostID: post.ID, UserID: 2, Content: "first"})
	require.NoError(t, err)
	second, err := repo.CreateComment(model.CommunityComment{PostID: post.ID, UserID: 3, Content: "second"})
	require.NoError(t, err)

	comments := repo.Comments(post.ID)
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, second.ID, comments[1].ID)
}

func TestPostsAreNewestFirst(t *testing.T) {
	repo := NewCommunityRepository()
	moduleID := 5

	repo.CreatePost(model.CommunityPost{UserID: 1, Title: "a", Content: "c"})
	repo.CreatePost(model.CommunityPost{UserID: 2, Title: "b", Content: "c", ModuleID: &moduleID})
	repo.CreatePost(model.CommunityPost{UserID: 1, Title: "c", Content: "c"})

	posts := repo.Posts()
	require.Len(t, posts, 3)
	assert.Equal(t, "c", posts[0].Title)
	assert.Equal(t, "a", posts[2].Title)

	mine := repo.PostsByUser(1)
	require.Len(t, mine, 2)
	assert.Equal(t, "c", mine[0].Title)

	byModule := repo.PostsByModule(moduleID)
	require.Len(t, byModule, 1)
	assert.Equal(t, "b", byModule[0].Title)
}
