package dto

import (
	"time"

	"justco/internal/microservices/http-api/models"
)

// PostMessageRequest is the body of POST /chat/message
type PostMessageRequest struct {
	SecretCode string `json:"secretCode"`
	UserName   string `json:"userName"`
	UserLogo   string `json:"userLogo,omitempty"`
	Text       string `json:"text"`
}

// MessageResponse is one entry of GET /chat/messages/:secretCode.
// UserLogo is always encoded, as "" when the poster sent none.
type MessageResponse struct {
	UserName  string    `json:"userName"`
	UserLogo  string    `json:"userLogo"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromModelToMessageResponse converts a Message model to MessageResponse DTO
func FromModelToMessageResponse(msg *models.Message) MessageResponse {
	return MessageResponse{
		UserName:  msg.UserName,
		UserLogo:  msg.UserLogo,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}
}

func FromModelsToMessageResponses(msgs []models.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(msgs))
	for i := range msgs {
		out = append(out, FromModelToMessageResponse(&msgs[i]))
	}
	return out
}
