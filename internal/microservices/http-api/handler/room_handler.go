package handler

import (
	"net/http"

	"justco/internal/microservices/http-api/dto"
	"justco/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService service.RoomService
}

func NewRoomHandler(roomService service.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

// RegisterRoutes registers room routes; admin guards the delete route.
func (h *RoomHandler) RegisterRoutes(router *gin.RouterGroup, admin gin.HandlerFunc) {
	router.POST("/create", h.Create)
	router.POST("/join", h.Join)
	router.GET("/rooms", h.List)
	router.DELETE("/room/:code", admin, h.Delete)
}

// Create creates a new chat room
// POST /chat/create
func (h *RoomHandler) Create(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgMissingFields})
		return
	}

	if err := h.roomService.CreateRoom(c.Request.Context(), req.ChatName, req.SecretCode, req.Type); err != nil {
		respondError(c, err, defaultErrorText)
		return
	}

	c.JSON(http.StatusCreated, dto.StatusResponse{Message: "Room created"})
}

// Join resolves a secret code to the room name
// POST /chat/join
func (h *RoomHandler) Join(c *gin.Context) {
	var req dto.JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgMissingSecretCode})
		return
	}

	room, err := h.roomService.JoinRoom(c.Request.Context(), req.SecretCode)
	if err != nil {
		respondError(c, err, errorText{invalidInput: msgMissingSecretCode, storage: msgDatabaseError})
		return
	}

	c.JSON(http.StatusOK, room)
}

// List returns every room
// GET /chat/rooms
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.roomService.ListRooms(c.Request.Context())
	if err != nil {
		respondError(c, err, errorText{invalidInput: msgMissingFields, storage: msgInternalError})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// Delete removes a room and all of its messages
// DELETE /chat/room/:code
func (h *RoomHandler) Delete(c *gin.Context) {
	if err := h.roomService.DeleteRoom(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err, errorText{invalidInput: msgMissingSecretCode, storage: msgDatabaseError})
		return
	}

	c.JSON(http.StatusOK, dto.DeleteRoomResponse{Success: true})
}
