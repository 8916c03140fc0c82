package service

import (
	"nextstep_backend/internal/model"
	"nextstep_backend/internal/repository"
	"nextstep_backend/internal/util"
)

// CommentRewardPoints is credited to a user for each comment they post.
const CommentRewardPoints = 5

type CommunityService struct {
	Community *repository.CommunityRepository
	Modules   *repository.ModuleRepository
	Users     *repository.UserRepository
}

func NewCommunityService(community *repository.CommunityRepository, modules *repository.ModuleRepository, users *repository.UserRepository) *CommunityService {
	return &CommunityService{
		Community: community,
		Modules:   modules,
		Users:     users,
	}
}

// annotate attaches the caller-relative like flag; viewerID 0 means the
// caller is anonymous and every flag is false. One lookup per post, no
// bulk query.
func (s *CommunityService) annotate(post model.CommunityPost, viewerID int) model.PostView {
	view := model.PostView{CommunityPost: post}
	if viewerID != 0 {
		view.IsLiked = s.Community.HasLiked(post.ID, viewerID)
	}
	return view
}

func (s *CommunityService) annotateAll(posts []model.CommunityPost, viewerID int) []model.PostView {
	out := make([]model.PostView, len(posts))
	for i, p := range posts {
		out[i] = s.annotate(p, viewerID)
	}
	return out
}

func (s *CommunityService) Posts(viewerID int) []model.PostView {
	return s.annotateAll(s.Community.Posts(), viewerID)
}

func (s *CommunityService) Post(id, viewerID int) (model.PostView, error) {
	post, ok := s.Community.FindPost(id)
	if !ok {
		return model.PostView{}, util.ErrPostNotFound
	}
	return s.annotate(post, viewerID), nil
}

func (s *CommunityService) PostsByUser(targetUserID, viewerID int) []model.PostView {
	return s.annotateAll(s.Community.PostsByUser(targetUserID), viewerID)
}

func (s *CommunityService) PostsByModule(moduleID, viewerID int) []model.PostView {
	return s.annotateAll(s.Community.PostsByModule(moduleID), viewerID)
}

type CreatePostInput struct {
	Title    string
	Content  string
	ModuleID *int
	FileURL  string
}

func (s *CommunityService) CreatePost(userID int, in CreatePostInput) (model.PostView, error) {
	if in.ModuleID != nil {
		if _, ok := s.Modules.FindByID(*in.ModuleID); !ok {
			return model.PostView{}, util.ErrModuleNotFound
		}
	}

	post := s.Community.CreatePost(model.CommunityPost{
		UserID:   userID,
		Title:    in.Title,
		Content:  in.Content,
		ModuleID: in.ModuleID,
		FileURL:  in.FileURL,
	})

	return model.PostView{CommunityPost: post}, nil
}

func (s *CommunityService) Comments(postID int) ([]model.CommunityComment, error) {
	if _, ok := s.Community.FindPost(postID); !ok {
		return nil, util.ErrPostNotFound
	}
	return s.Community.Comments(postID), nil
}

// CreateComment persists the comment and credits the commenter.
func (s *CommunityService) CreateComment(userID, postID int, content string) (model.CommunityComment, error) {
	comment, err := s.Community.CreateComment(model.CommunityComment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	})
	if err != nil {
		return model.CommunityComment{}, err
	}

	s.Users.AddPoints(userID, CommentRewardPoints)
	return comment, nil
}

// Like records the caller's like; the returned view always has IsLiked set.
func (s *CommunityService) Like(postID, userID int) (model.PostView, error) {
	post, err := s.Community.Like(postID, userID)
	if err != nil {
		return model.PostView{}, err
	}
	return model.PostView{CommunityPost: post, IsLiked: true}, nil
}

func (s *CommunityService) Unlike(postID, userID int) (model.PostView, error) {
	post, err := s.Community.Unlike(postID, userID)
	if err != nil {
		return model.PostView{}, err
	}
	return model.PostView{CommunityPost: post, IsLiked: false}, nil
}
