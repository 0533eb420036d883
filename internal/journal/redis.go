package journal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"petshop/catalog/internal/config"
)

// Journal appends mutation events to an append-only log and reads them back.
type Journal interface {
	Record(ctx context.Context, event Event) (string, error) // Returns stream entry ID
	Recent(ctx context.Context, count int64) ([]Entry, error)
}

type RedisJournal struct {
	redisClient *redis.Client
	streamName  string
	maxLen      int64
}

func NewRedisJournal(redisClient *redis.Client, cfg config.RedisConfig) *RedisJournal {
	return &RedisJournal{
		redisClient: redisClient,
		streamName:  cfg.KeyPrefix + "stream:mutations",
		maxLen:      cfg.JournalMaxLen,
	}
}

func (j *RedisJournal) Record(ctx context.Context, event Event) (string, error) {
	eventType := event.EventType()

	eventValue, err := event.EventValue()
	if err != nil {
		return "", fmt.Errorf("failed to serialize event: %w", err)
	}

	// Fields: event_type, event_data
	entryID, err := j.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: j.streamName,
		MaxLen: j.maxLen,
		Values: map[string]interface{}{
			"event_type": eventType,
			"event_data": string(eventValue),
		},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to add event to Redis stream %s: %w", j.streamName, err)
	}

	log.Debugf("Recorded %s in stream %s with entry ID: %s", eventType, j.streamName, entryID)
	return entryID, nil
}

// Recent returns up to count events, newest first.
func (j *RedisJournal) Recent(ctx context.Context, count int64) ([]Entry, error) {
	messages, err := j.redisClient.XRevRangeN(ctx, j.streamName, "+", "-", count).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read from Redis stream %s: %w", j.streamName, err)
	}

	entries := make([]Entry, 0, len(messages))
	for _, msg := range messages {
		data, ok := msg.Values["event_data"].(string)
		if !ok {
			log.Warnf("⚠️ Skipping journal entry %s without event data", msg.ID)
			continue
		}

		var event Event
		if err := json.Unmarshal([]byte(data), &event); err != nil {
			log.Warnf("⚠️ Skipping unreadable journal entry %s: %v", msg.ID, err)
			continue
		}
		entries = append(entries, Entry{ID: msg.ID, Event: event})
	}

	return entries, nil
}
