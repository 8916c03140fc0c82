package util

import (
	"net/http"

	"nextstep_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageResponse is the error body shape the client expects.
//
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// Message writes the {"message": ...} body used for every non-entity response.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Message(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	Message(c, http.StatusInternalServerError, message)
}

func LogInternalError(c *gin.Context, message string, err error) {
	logger.Log.Error(message, zap.Error(err), zap.String("path", c.FullPath()))
	InternalServerError(c, message)
}
