package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/infoaidtech/backend/internal/services"
	"github.com/infoaidtech/backend/internal/utils"
)

type ChatHandler struct {
	svc services.ChatService
}

func NewChatHandler(svc services.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type ChatRequest struct {
	Message             string `json:"message"`
	ConversationHistory string `json:"conversationHistory"`
	SystemPrompt        string `json:"systemPrompt"`
}

type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
	Message  string `json:"message,omitempty"`
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ChatHandler.Chat", "invalid request body", err))
		return
	}

	result, err := h.svc.Respond(c.Request.Context(), req.Message, req.ConversationHistory, req.SystemPrompt)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Success:  true,
		Response: result.Response,
		Fallback: result.Fallback,
	})
}

func (h *ChatHandler) Health(c *gin.Context) {
	status := h.svc.Health(c.Request.Context())
	resp := gin.H{"success": true, "status": status.Status}
	if status.Status == "fallback-mode" {
		resp["message"] = "Using fallback responses"
	}
	c.JSON(http.StatusOK, resp)
}
