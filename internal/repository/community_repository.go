package repository

import (
	"sort"
	"sync"
	"time"

	"nextstep_backend/internal/model"
	"nextstep_backend/internal/util"
)

type likeKey struct {
	PostID int
	UserID int
}

// CommunityRepository owns posts, comments and likes together so that the
// denormalized likesCount on a post always moves in the same critical
// section as the like row itself. Duplicate like / redundant unlike are
// rejected here, under the lock, not checked upstream.
type CommunityRepository struct {
	mu         sync.RWMutex
	posts      map[int]*model.CommunityPost
	comments   map[int]*model.CommunityComment
	likes      map[int]*model.PostLike
	likeByPair map[likeKey]int
	byPost     map[int][]int // comment IDs per post

	nextPostID    int
	nextCommentID int
	nextLikeID    int
}

func NewCommunityRepository() *CommunityRepository {
	return &CommunityRepository{
		posts:      make(map[int]*model.CommunityPost),
		comments:   make(map[int]*model.CommunityComment),
		likes:      make(map[int]*model.PostLike),
		likeByPair: make(map[likeKey]int),
		byPost:     make(map[int][]int),

		nextPostID:    1,
		nextCommentID: 1,
		nextLikeID:    1,
	}
}

func (r *CommunityRepository) CreatePost(p model.CommunityPost) model.CommunityPost {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	p.ID = r.nextPostID
	r.nextPostID++
	p.LikesCount = 0
	p.CreatedAt = now
	p.UpdatedAt = now
	stored := p
	r.posts[stored.ID] = &stored
	return p
}

func (r *CommunityRepository) FindPost(id int) (model.CommunityPost, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.posts[id]
	if !ok {
		return model.CommunityPost{}, false
	}
	return *p, true
}

func sortPostsNewestFirst(posts []model.CommunityPost) {
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

func (r *CommunityRepository) Posts() []model.CommunityPost {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.CommunityPost, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *p)
	}
	sortPostsNewestFirst(out)
	return out
}

func (r *CommunityRepository) PostsByUser(userID int) []model.CommunityPost {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.CommunityPost{}
	for _, p := range r.posts {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sortPostsNewestFirst(out)
	return out
}

func (r *CommunityRepository) PostsByModule(moduleID int) []model.CommunityPost {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.CommunityPost{}
	for _, p := range r.posts {
		if p.ModuleID != nil && *p.ModuleID == moduleID {
			out = append(out, *p)
		}
	}
	sortPostsNewestFirst(out)
	return out
}

func (r *CommunityRepository) CreateComment(c model.CommunityComment) (model.CommunityComment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[c.PostID]; !ok {
		return model.CommunityComment{}, util.ErrPostNotFound
	}
	now := time.Now()
	c.ID = r.nextCommentID
	r.nextCommentID++
	c.CreatedAt = now
	c.UpdatedAt = now
	stored := c
	r.comments[stored.ID] = &stored
	r.byPost[stored.PostID] = append(r.byPost[stored.PostID], stored.ID)
	return c, nil
}

// Comments returns a post's comments oldest first.
func (r *CommunityRepository) Comments(postID int) []model.CommunityComment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byPost[postID]
	out := make([]model.CommunityComment, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.comments[id])
	}
	return out
}

func (r *CommunityRepository) HasLiked(postID, userID int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.likeByPair[likeKey{postID, userID}]
	return ok
}

// Like records the (post, user) like and bumps the post's counter in the
// same critical section. A second like for the pair fails with
// ErrAlreadyLiked and leaves the counter untouched.
func (r *CommunityRepository) Like(postID, userID int) (model.CommunityPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[postID]
	if !ok {
		return model.CommunityPost{}, util.ErrPostNotFound
	}

	key := likeKey{postID, userID}
	if _, dup := r.likeByPair[key]; dup {
		return model.CommunityPost{}, util.ErrAlreadyLiked
	}

	like := &model.PostLike{
		ID:        r.nextLikeID,
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	r.nextLikeID++
	r.likes[like.ID] = like
	r.likeByPair[key] = like.ID

	post.LikesCount++
	post.UpdatedAt = time.Now()
	return *post, nil
}

// Unlike removes the like and decrements the counter; unliking a post the
// user never liked fails with ErrNotLiked.
func (r *CommunityRepository) Unlike(postID, userID int) (model.CommunityPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[postID]
	if !ok {
		return model.CommunityPost{}, util.ErrPostNotFound
	}

	key := likeKey{postID, userID}
	likeID, liked := r.likeByPair[key]
	if !liked {
		return model.CommunityPost{}, util.ErrNotLiked
	}

	delete(r.likes, likeID)
	delete(r.likeByPair, key)

	post.LikesCount--
	post.UpdatedAt = time.Now()
	return *post, nil
}
