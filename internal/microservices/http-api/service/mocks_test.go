package service

import (
	"context"

	"justco/internal/microservices/http-api/models"

	"github.com/stretchr/testify/mock"
)

// MockRoomRepository mocks the RoomRepository interface
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *models.ChatRoom) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) GetBySecretCode(ctx context.Context, secretCode string) (*models.ChatRoom, error) {
	args := m.Called(ctx, secretCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatRoom), args.Error(1)
}

func (m *MockRoomRepository) List(ctx context.Context) ([]models.ChatRoom, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatRoom), args.Error(1)
}

func (m *MockRoomRepository) DeleteWithMessages(ctx context.Context, secretCode string) error {
	args := m.Called(ctx, secretCode)
	return args.Error(0)
}

// MockMessageRepository mocks the MessageRepository interface
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) CreateInRoom(ctx context.Context, message *models.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) ListBySecretCode(ctx context.Context, secretCode string) ([]models.Message, error) {
	args := m.Called(ctx, secretCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

// MockRoomCache mocks the cache.RoomCache interface
type MockRoomCache struct {
	mock.Mock
}

func (m *MockRoomCache) GetChatName(ctx context.Context, secretCode string) (string, error) {
	args := m.Called(ctx, secretCode)
	return args.String(0), args.Error(1)
}

func (m *MockRoomCache) SetChatName(ctx context.Context, secretCode, chatName string) error {
	args := m.Called(ctx, secretCode, chatName)
	return args.Error(0)
}

func (m *MockRoomCache) Invalidate(ctx context.Context, secretCode string) error {
	args := m.Called(ctx, secretCode)
	return args.Error(0)
}

func (m *MockRoomCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
