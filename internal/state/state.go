package state

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"petshop/catalog/internal/domain"
)

// StateManager remembers the last list query per resource so a list view can
// resume where it was left.
type StateManager interface {
	GetLastQuery(ctx context.Context, resource string) (*domain.ListQuery, error)
	SetLastQuery(ctx context.Context, resource string, query domain.ListQuery) error
}

type redisStateManager struct {
	redisClient *redis.Client
	keyPrefix   string
}

func NewRedisStateManager(redisClient *redis.Client, prefix string) StateManager {
	return &redisStateManager{
		redisClient: redisClient,
		keyPrefix:   prefix + "view:",
	}
}

func (s *redisStateManager) GetLastQuery(ctx context.Context, resource string) (*domain.ListQuery, error) {
	key := s.keyPrefix + resource
	val, err := s.redisClient.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Nothing saved yet
		}
		return nil, fmt.Errorf("failed to get last query for %s: %w", resource, err)
	}

	var query domain.ListQuery
	if err := json.Unmarshal([]byte(val), &query); err != nil {
		return nil, fmt.Errorf("failed to parse last query for %s: %w", resource, err)
	}

	return &query, nil
}

func (s *redisStateManager) SetLastQuery(ctx context.Context, resource string, query domain.ListQuery) error {
	key := s.keyPrefix + resource
	val, err := json.Marshal(query)
	if err != nil {
		return fmt.Errorf("failed to encode last query for %s: %w", resource, err)
	}

	err = s.redisClient.Set(ctx, key, val, 0).Err() // No expiration
	if err != nil {
		return fmt.Errorf("failed to set last query for %s: %w", resource, err)
	}
	return nil
}
