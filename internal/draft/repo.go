package draft

import (
	"context"
	"errors"
	"time"

	"github.com/unitedformulas/storefront-api/pkg/redis"
)

// Storage persists a visitor's serialized draft. GetDraft returns an empty
// string when no draft exists.
type Storage interface {
	GetDraft(ctx context.Context, profileID string) (string, error)
	SetDraft(ctx context.Context, profileID, payload string) error
	DeleteDraft(ctx context.Context, profileID string) error
}

type redisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStorage backs draft persistence with the shared Redis client.
func NewRedisStorage(client *redis.Client, ttl time.Duration) Storage {
	return &redisStorage{client: client, ttl: ttl}
}

func (s *redisStorage) GetDraft(ctx context.Context, profileID string) (string, error) {
	value, err := s.client.Get(ctx, s.client.DraftKey(profileID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (s *redisStorage) SetDraft(ctx context.Context, profileID, payload string) error {
	return s.client.Set(ctx, s.client.DraftKey(profileID), payload, s.ttl)
}

func (s *redisStorage) DeleteDraft(ctx context.Context, profileID string) error {
	return s.client.Del(ctx, s.client.DraftKey(profileID))
}
