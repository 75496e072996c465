package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookhub/internal/microservices/http-api/models"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:user:"

type redisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepository keeps sessions as hashes under session:user:<id>.
// A positive ttl expires the hash along with the tokens signed by it.
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &redisSessionRepository{client: client, ttl: ttl}
}

func sessionKey(userID string) string {
	return sessionKeyPrefix + userID
}

func (r *redisSessionRepository) DeleteByUser(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	return nil
}

func (r *redisSessionRepository) Create(ctx context.Context, session *models.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	key := sessionKey(session.UserID)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			"key", session.Key,
			"ip", session.IP,
			"city", session.City,
			"country", session.Country,
			"location", session.Location,
			"state", session.State,
			"timezone", session.Timezone,
			"created_at", session.CreatedAt.UTC().Format(time.RFC3339),
		)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *redisSessionRepository) FindKeyByUser(ctx context.Context, userID string) (string, error) {
	key, err := r.client.HGet(ctx, sessionKey(userID), "key").Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("find session: %w", err)
	}
	return key, nil
}
