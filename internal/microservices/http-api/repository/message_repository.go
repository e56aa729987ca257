package repository

import (
	"context"
	"errors"
	"fmt"

	"justco/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MessageRepository interface {
	CreateInRoom(ctx context.Context, message *models.Message) error
	ListBySecretCode(ctx context.Context, secretCode string) ([]models.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// CreateInRoom inserts the message only if its room exists. The room row is
// read FOR SHARE inside the same transaction, so a concurrent delete of the
// room waits for the insert (or the insert sees the room gone).
func (r *messageRepository) CreateInRoom(ctx context.Context, message *models.Message) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.ChatRoom
		err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			Select("secret_code").
			Where("secret_code = ?", message.SecretCode).
			Take(&room).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		return tx.Create(message).Error
	})
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return err
		}
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// ListBySecretCode returns the room history oldest first. id breaks ties
// between messages stored within the same clock tick.
func (r *messageRepository) ListBySecretCode(ctx context.Context, secretCode string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("secret_code = ?", secretCode).
		Order("created_at ASC").
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}
