package service

import (
	"context"
	"errors"

	"justco/internal/microservices/http-api/dto"
	"justco/internal/microservices/http-api/models"
	"justco/internal/microservices/http-api/repository"
)

type MessageService interface {
	PostMessage(ctx context.Context, req dto.PostMessageRequest) error
	GetMessages(ctx context.Context, secretCode string) ([]dto.MessageResponse, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
}

func NewMessageService(messageRepo repository.MessageRepository) MessageService {
	return &messageService{messageRepo: messageRepo}
}

// PostMessage appends a message to an existing room. The existence check and
// the insert happen in one repository transaction.
func (s *messageService) PostMessage(ctx context.Context, req dto.PostMessageRequest) error {
	if isBlank(req.SecretCode) || isBlank(req.UserName) || isBlank(req.Text) {
		return ErrInvalidInput
	}

	msg := &models.Message{
		SecretCode: req.SecretCode,
		UserName:   req.UserName,
		UserLogo:   req.UserLogo,
		Text:       req.Text,
	}
	if err := s.messageRepo.CreateInRoom(ctx, msg); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return ErrNotFound
		}
		return storageError(err)
	}
	return nil
}

// GetMessages returns the history of a room, oldest first. Unlike
// PostMessage it does not require the room to exist; an unknown, deleted or
// blank code simply has no messages.
func (s *messageService) GetMessages(ctx context.Context, secretCode string) ([]dto.MessageResponse, error) {
	msgs, err := s.messageRepo.ListBySecretCode(ctx, secretCode)
	if err != nil {
		return nil, storageError(err)
	}
	return dto.FromModelsToMessageResponses(msgs), nil
}
