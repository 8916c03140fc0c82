package controller

import (
	"net/http"

	"nextstep_backend/internal/middleware"
	"nextstep_backend/internal/model"
	"nextstep_backend/internal/service"
	"nextstep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// GetMessages godoc
// @Summary List the caller's chat history, oldest first
// @Tags chat
// @Produce json
// @Success 200 {array} model.ChatMessage
// @Failure 401 {object} util.MessageResponse
// @Router /api/chat/messages [get]
func (c *ChatController) GetMessages(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)
	ctx.JSON(http.StatusOK, c.ChatService.Messages(user.ID))
}

// SendMessageRequest defines the chat submission payload.
// swagger:model SendMessageRequest
type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// SendMessage godoc
// @Summary Send a message to the career coach
// @Description Persists the user's message and the coach reply, returned as a pair
// @Tags chat
// @Accept json
// @Produce json
// @Param body body SendMessageRequest true "message payload"
// @Success 201 {array} model.ChatMessage
// @Failure 400 {object} util.MessageResponse
// @Failure 401 {object} util.MessageResponse
// @Router /api/chat/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	var req SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userMessage, botMessage := c.ChatService.Send(ctx.Request.Context(), user.ID, req.Message)
	ctx.JSON(http.StatusCreated, []model.ChatMessage{userMessage, botMessage})
}
