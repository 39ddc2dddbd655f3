package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/modmarket/modmarket/internal/logger"
	"github.com/modmarket/modmarket/internal/models"
)

// SessionCacheRepository provides a Redis read-through cache for session
// rows. Sessions are immutable and only ever lapse, so caching a row until
// its own expiry cannot serve stale validity decisions.
type SessionCacheRepository struct {
	client *redis.Client
}

// NewSessionCacheRepository creates a new repository instance.
func NewSessionCacheRepository(client *redis.Client) *SessionCacheRepository {
	return &SessionCacheRepository{client: client}
}

// Get fetches a cached session by token. A cache miss returns nil, nil.
func (r *SessionCacheRepository) Get(ctx context.Context, token string) (*models.SessionDB, error) {
	key := sessionKey(token)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	var session models.SessionDB
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	return &session, nil
}

// Set caches a session until its own expiry. Already-lapsed sessions are
// not cached.
func (r *SessionCacheRepository) Set(ctx context.Context, session models.SessionDB) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	key := sessionKey(session.Token)
	err = r.client.Set(ctx, key, data, ttl).Err()

	logger.Log.Infow(
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
