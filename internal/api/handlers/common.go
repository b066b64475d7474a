package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/infoaidtech/backend/internal/utils"
)

// envelope is the uniform response wrapper: {body, message} on success,
// {message} on error.
type envelope struct {
	Body    any    `json:"body,omitempty"`
	Message string `json:"message"`
}

func writeBody(c *gin.Context, status int, body any, message string) {
	c.JSON(status, envelope{Body: body, Message: message})
}

func writeMessage(c *gin.Context, status int, message string) {
	c.JSON(status, envelope{Message: message})
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := utils.HTTPStatus(err)
	msg := utils.Message(err)
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	c.JSON(status, envelope{Message: msg})
}
