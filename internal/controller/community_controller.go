package controller

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"nextstep_backend/internal/middleware"
	"nextstep_backend/internal/service"
	"nextstep_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CommunityController struct {
	CommunityService *service.CommunityService
	StorageService   *service.StorageService
}

func NewCommunityController(communityService *service.CommunityService, storageService *service.StorageService) *CommunityController {
	return &CommunityController{
		CommunityService: communityService,
		StorageService:   storageService,
	}
}

// viewerID returns the caller's user ID, or 0 for guests.
func viewerID(ctx *gin.Context) int {
	if user, ok := middleware.CurrentUser(ctx); ok {
		return user.ID
	}
	return 0
}

// GetPosts godoc
// @Summary List community posts, newest first
// @Description Authenticated callers get each post's isLiked flag filled in
// @Tags community
// @Produce json
// @Success 200 {array} model.PostView
// @Router /api/community/posts [get]
func (c *CommunityController) GetPosts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.CommunityService.Posts(viewerID(ctx)))
}

// GetPost godoc
// @Summary Fetch a single post
// @Tags community
// @Produce json
// @Param id path int true "post id"
// @Success 200 {object} model.PostView
// @Failure 400 {object} util.MessageResponse
// @Failure 404 {object} util.MessageResponse
// @Router /api/community/posts/{id} [get]
func (c *CommunityController) GetPost(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid post ID")
		return
	}

	view, err := c.CommunityService.Post(id, viewerID(ctx))
	if err != nil {
		util.NotFound(ctx, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// GetUserPosts godoc
// @Summary List a user's posts
// @Tags community
// @Produce json
// @Param userId path int true "user id"
// @Success 200 {array} model.PostView
// @Failure 400 {object} util.MessageResponse
// @Router /api/community/user/{userId}/posts [get]
func (c *CommunityController) GetUserPosts(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid user ID")
		return
	}
	ctx.JSON(http.StatusOK, c.CommunityService.PostsByUser(userID, viewerID(ctx)))
}

// GetModulePosts godoc
// @Summary List posts attached to a module
// @Tags community
// @Produce json
// @Param moduleId path int true "module id"
// @Success 200 {array} model.PostView
// @Failure 400 {object} util.MessageResponse
// @Router /api/community/module/{moduleId}/posts [get]
func (c *CommunityController) GetModulePosts(ctx *gin.Context) {
	moduleID, err := strconv.Atoi(ctx.Param("moduleId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid module ID")
		return
	}
	ctx.JSON(http.StatusOK, c.CommunityService.PostsByModule(moduleID, viewerID(ctx)))
}

// CreatePostRequest defines the post creation payload.
// swagger:model CreatePostRequest
type CreatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	ModuleID *int   `json:"moduleId"`
	FileURL  string `json:"fileUrl"`
}

// CreatePost godoc
// @Summary Create a community post
// @Tags community
// @Accept json
// @Produce json
// @Param body body CreatePostRequest true "post payload"
// @Success 201 {object} model.PostView
// @Failure 400 {object} util.MessageResponse
// @Failure 401 {object} util.MessageResponse
// @Failure 404 {object} util.MessageResponse
// @Router /api/community/posts [post]
func (c *CommunityController) CreatePost(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	var req CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.CommunityService.CreatePost(user.ID, service.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		ModuleID: req.ModuleID,
		FileURL:  req.FileURL,
	})
	if err != nil {
		util.NotFound(ctx, err.Error())
		return
	}

	ctx.JSON(http.StatusCreated, view)
}

// GetComments godoc
// @Summary List a post's comments, oldest first
// @Tags community
// @Produce json
// @Param id path int true "post id"
// @Success 200 {array} model.CommunityComment
// @Failure 400 {object} util.MessageResponse
// @Failure 404 {object} util.MessageResponse
// @Router /api/community/posts/{id}/comments [get]
func (c *CommunityController) GetComments(ctx *gin.Context) {
	postID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid post ID")
		return
	}

	comments, err := c.CommunityService.Comments(postID)
	if err != nil {
		util.NotFound(ctx, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, comments)
}

// CreateCommentRequest defines the comment payload.
// swagger:model CreateCommentRequest
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateComment godoc
// @Summary Comment on a post
// @Description The commenter is awarded points for participating
// @Tags community
// @Accept json
// @Produce json
// @Param id path int true "post id"
// @Param body body CreateCommentRequest true "comment payload"
// @Success 201 {object} model.CommunityComment
// @Failure 400 {object} util.MessageResponse
// @Failure 401 {object} util.MessageResponse
// @Failure 404 {object} util.MessageResponse
// @Router /api/community/posts/{id}/comments [post]
func (c *CommunityController) CreateComment(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	postID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid post ID")
		return
	}

	var req CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.CommunityService.CreateComment(user.ID, postID, req.Content)
	if err != nil {
		util.NotFound(ctx, err.Error())
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

// LikePost godoc
// @Summary Like a post
// @Tags community
// @Produce json
// @Param id path int true "post id"
// @Success 200 {object} model.PostView
// @Failure 400 {object} util.MessageResponse
// @Failure 401 {object} util.MessageResponse
// @Failure 404 {object} util.MessageResponse
// @Router /api/community/posts/{id}/like [post]
func (c *CommunityController) LikePost(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	postID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid post ID")
		return
	}

	view, err := c.CommunityService.Like(postID, user.ID)
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// UnlikePost godoc
// @Summary Remove a like from a post
// @Tags community
// @Produce json
// @Param id path int true "post id"
// @Success 200 {object} model.PostView
// @Failure 400 {object} util.MessageResponse
// @Failure 401 {object} util.MessageResponse
// @Failure 404 {object} util.MessageResponse
// @Router /api/community/posts/{id}/like [delete]
func (c *CommunityController) UnlikePost(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	postID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid post ID")
		return
	}

	view, err := c.CommunityService.Unlike(postID, user.ID)
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// UploadAttachment godoc
// @Summary Upload a file for use in a post
// @Tags community
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "attachment"
// @Success 201 {object} map[string]string
// @Failure 400 {object} util.MessageResponse
// @Failure 401 {object} util.MessageResponse
// @Failure 500 {object} util.MessageResponse
// @Router /api/community/upload [post]
func (c *CommunityController) UploadAttachment(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "No file provided")
		return
	}

	src, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, "Failed to read uploaded file", err)
		return
	}
	defer src.Close()

	name := uuid.New().String() + filepath.Ext(header.Filename)
	contentType := header.Header.Get("Content-Type")

	fileURL, err := c.StorageService.Upload(ctx.Request.Context(), name, src, header.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, "Failed to store uploaded file", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"fileUrl": fileURL})
}
