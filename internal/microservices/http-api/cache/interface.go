package cache

import (
	"context"
	"errors"
)

var ErrCacheMiss = errors.New("cache miss")

// RoomCache maps secret codes to room display names. SetChatName only fills
// an empty slot; Invalidate leaves a tombstone that blocks fills until it
// expires, so a lookup that raced a delete cannot re-cache the deleted room.
type RoomCache interface {
	GetChatName(ctx context.Context, secretCode string) (string, error)
	SetChatName(ctx context.Context, secretCode, chatName string) error
	Invalidate(ctx context.Context, secretCode string) error
	Close() error
}

// NoopRoomCache is used when no Redis is configured; every lookup misses.
type NoopRoomCache struct{}

func (NoopRoomCache) GetChatName(context.Context, string) (string, error) {
	return "", ErrCacheMiss
}

func (NoopRoomCache) SetChatName(context.Context, string, string) error { return nil }

func (NoopRoomCache) Invalidate(context.Context, string) error { return nil }

func (NoopRoomCache) Close() error { return nil }
