package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/pdfchat/service"
	"github.com/tieubaoca/pdfchat/types"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

func (h *ChatHandler) HandleChat(c *gin.Context) {
	var chatRequest types.ChatRequest
	if err := c.ShouldBindJSON(&chatRequest); err != nil {
		sendError(c, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}

	response, err := h.chatService.Reply(c.Request.Context(), chatRequest.ToMessages())
	if err != nil {
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ChatResponse{Response: response})
}
