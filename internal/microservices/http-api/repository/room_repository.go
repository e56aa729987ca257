package repository

import (
	"context"
	"errors"
	"fmt"

	"justco/internal/logger"
	"justco/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type RoomRepository interface {
	Create(ctx context.Context, room *models.ChatRoom) error
	GetBySecretCode(ctx context.Context, secretCode string) (*models.ChatRoom, error)
	List(ctx context.Context) ([]models.ChatRoom, error)
	DeleteWithMessages(ctx context.Context, secretCode string) error
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

// Create inserts the room. Uniqueness of secret_code is enforced by the
// unique index, a violation comes back as ErrDuplicateSecretCode.
func (r *roomRepository) Create(ctx context.Context, room *models.ChatRoom) error {
	if err := r.db.WithContext(ctx).Create(room).Error; err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicateSecretCode
		}
		return fmt.Errorf("insert chat room: %w", err)
	}
	return nil
}

func (r *roomRepository) GetBySecretCode(ctx context.Context, secretCode string) (*models.ChatRoom, error) {
	var room models.ChatRoom
	err := r.db.WithContext(ctx).
		Select("chat_name", "secret_code").
		Where("secret_code = ?", secretCode).
		Take(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("select chat room: %w", err)
	}
	return &room, nil
}

// List returns every room. Older schemas have no type column, so when the
// full query fails it is retried with a constant 'public' type.
func (r *roomRepository) List(ctx context.Context) ([]models.ChatRoom, error) {
	var rooms []models.ChatRoom
	err := r.db.WithContext(ctx).
		Model(&models.ChatRoom{}).
		Select("chat_name", "secret_code", "type").
		Find(&rooms).Error
	if err == nil {
		return rooms, nil
	}

	log := logger.Ctx(ctx)
	log.Warn().Err(err).
		Bool("undefined_column", IsUndefinedColumn(err)).
		Msg("listing rooms with type failed, retrying without type column")

	rooms = nil
	if err := r.db.WithContext(ctx).
		Model(&models.ChatRoom{}).
		Select("chat_name, secret_code, 'public' AS type").
		Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list chat rooms: %w", err)
	}
	return rooms, nil
}

// DeleteWithMessages removes the room and every message sharing its secret
// code in one transaction. Unknown codes are not an error.
func (r *roomRepository) DeleteWithMessages(ctx context.Context, secretCode string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("secret_code = ?", secretCode).Delete(&models.ChatRoom{}).Error; err != nil {
			return err
		}
		return tx.Where("secret_code = ?", secretCode).Delete(&models.Message{}).Error
	})
	if err != nil {
		return fmt.Errorf("delete chat room: %w", err)
	}
	return nil
}
