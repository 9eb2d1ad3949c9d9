// Package session holds the short-lived per-browser state that survives the
// triage redirect round trip: at most one pending feedback message.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// MessageStore is a two-state machine per session: Empty and Pending(message).
// Store moves Empty to Pending; Consume moves Pending back to Empty and
// returns the message, so a preserved message is read out exactly once.
type MessageStore interface {
	Store(ctx context.Context, sessionID, message string) error
	Consume(ctx context.Context, sessionID string) (string, bool, error)
}

const feedbackKeyPrefix = "feedback_message:"

// RedisMessageStore keeps pending messages in Redis with a bounded lifetime.
type RedisMessageStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisMessageStore builds a store over an existing client.
func NewRedisMessageStore(client *redis.Client, ttl time.Duration) *RedisMessageStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisMessageStore{client: client, ttl: ttl}
}

// Store saves the pending message for the session.
func (s *RedisMessageStore) Store(ctx context.Context, sessionID, message string) error {
	return s.client.Set(ctx, feedbackKeyPrefix+sessionID, message, s.ttl).Err()
}

// Consume removes and returns the pending message, if any.
func (s *RedisMessageStore) Consume(ctx context.Context, sessionID string) (string, bool, error) {
	message, err := s.client.GetDel(ctx, feedbackKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return message, true, nil
}
