package model

import (
	"time"
)

// swagger:model CommunityPost
type CommunityPost struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ModuleID   *int      `json:"moduleId,omitempty"`
	FileURL    string    `json:"fileUrl,omitempty"`
	LikesCount int       `json:"likesCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// swagger:model CommunityComment
type CommunityComment struct {
	ID        int       `json:"id"`
	PostID    int       `json:"postId"`
	UserID    int       `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PostLike struct {
	ID        int       `json:"id"`
	PostID    int       `json:"postId"`
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostView is a post annotated with the caller-relative like flag.
//
// swagger:model PostView
type PostView struct {
	CommunityPost
	IsLiked bool `json:"isLiked"`
}
