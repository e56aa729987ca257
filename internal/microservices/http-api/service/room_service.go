package service

import (
	"context"
	"errors"
	"time"

	"justco/internal/logger"
	"justco/internal/microservices/http-api/cache"
	"justco/internal/microservices/http-api/dto"
	"justco/internal/microservices/http-api/models"
	"justco/internal/microservices/http-api/repository"

	"golang.org/x/sync/singleflight"
)

const lookupTimeout = 5 * time.Second

type RoomService interface {
	CreateRoom(ctx context.Context, chatName, secretCode, roomType string) error
	JoinRoom(ctx context.Context, secretCode string) (*dto.JoinRoomResponse, error)
	ListRooms(ctx context.Context) ([]dto.RoomResponse, error)
	DeleteRoom(ctx context.Context, secretCode string) error
}

type roomService struct {
	roomRepo  repository.RoomRepository
	roomCache cache.RoomCache
	sf        singleflight.Group
}

// NewRoomService wires the room repository with an optional name cache;
// a nil cache disables caching.
func NewRoomService(roomRepo repository.RoomRepository, roomCache cache.RoomCache) RoomService {
	if roomCache == nil {
		roomCache = cache.NoopRoomCache{}
	}
	return &roomService{
		roomRepo:  roomRepo,
		roomCache: roomCache,
	}
}

// CreateRoom stores a new room. The unique index on secret_code decides
// conflicts, there is no separate existence check.
func (s *roomService) CreateRoom(ctx context.Context, chatName, secretCode, roomType string) error {
	if isBlank(chatName) || isBlank(secretCode) {
		return ErrInvalidInput
	}
	if isBlank(roomType) {
		roomType = models.RoomTypePublic
	}

	room := &models.ChatRoom{
		ChatName:   chatName,
		SecretCode: secretCode,
		Type:       roomType,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		if errors.Is(err, repository.ErrDuplicateSecretCode) {
			return ErrConflict
		}
		return storageError(err)
	}

	log := logger.Ctx(ctx)
	log.Info().Str("room_type", roomType).Msg("room created")
	return nil
}

// JoinRoom resolves a secret code to the room's display name.
func (s *roomService) JoinRoom(ctx context.Context, secretCode string) (*dto.JoinRoomResponse, error) {
	if isBlank(secretCode) {
		return nil, ErrInvalidInput
	}

	log := logger.Ctx(ctx)

	name, err := s.roomCache.GetChatName(ctx, secretCode)
	if err == nil {
		return &dto.JoinRoomResponse{ChatName: name}, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Warn().Err(err).Msg("room cache lookup failed")
	}

	// Concurrent joins of the same room share one query. It runs detached
	// from the first caller so its disconnect does not fail the others.
	result, err, _ := s.sf.Do(secretCode, func() (interface{}, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lookupTimeout)
		defer cancel()

		room, err := s.roomRepo.GetBySecretCode(lookupCtx, secretCode)
		if err != nil {
			return nil, err
		}
		if err := s.roomCache.SetChatName(lookupCtx, secretCode, room.ChatName); err != nil {
			log.Warn().Err(err).Msg("room cache fill failed")
		}
		return room.ChatName, nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError(err)
	}

	return &dto.JoinRoomResponse{ChatName: result.(string)}, nil
}

func (s *roomService) ListRooms(ctx context.Context) ([]dto.RoomResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return dto.FromModelsToRoomResponses(rooms), nil
}

// DeleteRoom removes a room and its history. Deleting an unknown code,
// blank ones included, succeeds.
func (s *roomService) DeleteRoom(ctx context.Context, secretCode string) error {
	if err := s.roomRepo.DeleteWithMessages(ctx, secretCode); err != nil {
		return storageError(err)
	}

	log := logger.Ctx(ctx)
	if err := s.roomCache.Invalidate(ctx, secretCode); err != nil {
		log.Warn().Err(err).Msg("room cache invalidation failed")
	}
	log.Info().Msg("room deleted")
	return nil
}
