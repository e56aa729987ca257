package dto

import "justco/internal/microservices/http-api/models"

// CreateRoomRequest is the body of POST /chat/create
type CreateRoomRequest struct {
	ChatName   string `json:"chatName"`
	SecretCode string `json:"secretCode"`
	Type       string `json:"type,omitempty"`
}

// JoinRoomRequest is the body of POST /chat/join
type JoinRoomRequest struct {
	SecretCode string `json:"secretCode"`
}

// JoinRoomResponse carries only the room's display name
type JoinRoomResponse struct {
	ChatName string `json:"chatName"`
}

// RoomResponse is one entry of GET /chat/rooms
type RoomResponse struct {
	ChatName   string `json:"chatName"`
	SecretCode string `json:"secretCode"`
	Type       string `json:"type"`
}

// FromModelToRoomResponse converts a ChatRoom model to RoomResponse DTO
func FromModelToRoomResponse(room *models.ChatRoom) RoomResponse {
	return RoomResponse{
		ChatName:   room.ChatName,
		SecretCode: room.SecretCode,
		Type:       room.EffectiveType(),
	}
}

// FromModelsToRoomResponses never returns nil so an empty list encodes as []
func FromModelsToRoomResponses(rooms []models.ChatRoom) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, FromModelToRoomResponse(&rooms[i]))
	}
	return out
}

// DeleteRoomResponse is returned by the admin delete endpoint
type DeleteRoomResponse struct {
	Success bool `json:"success"`
}
