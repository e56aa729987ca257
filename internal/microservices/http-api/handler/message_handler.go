package handler

import (
	"net/http"

	"justco/internal/microservices/http-api/dto"
	"justco/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// RegisterRoutes registers message routes
func (h *MessageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/message", h.Post)
	router.GET("/messages/:secretCode", h.List)
}

// Post appends a message to a room
// POST /chat/message
func (h *MessageHandler) Post(c *gin.Context) {
	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgMissingFields})
		return
	}

	if err := h.messageService.PostMessage(c.Request.Context(), req); err != nil {
		respondError(c, err, defaultErrorText)
		return
	}

	c.JSON(http.StatusCreated, dto.StatusResponse{Message: "Message saved"})
}

// List returns a room's history, oldest first
// GET /chat/messages/:secretCode
func (h *MessageHandler) List(c *gin.Context) {
	msgs, err := h.messageService.GetMessages(c.Request.Context(), c.Param("secretCode"))
	if err != nil {
		respondError(c, err, errorText{invalidInput: msgMissingSecretCode, storage: msgDatabaseError})
		return
	}

	c.JSON(http.StatusOK, msgs)
}
