package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedSession is the denormalized copy of the signed-in user kept in Redis
// so /auth/me can answer without a database round trip. The JWT remains the
// authoritative identity; this copy is advisory only.
type CachedSession struct {
	UID   uint   `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// SessionCache abstracts the Redis session store so the auth service can be
// tested without a live Redis, and so a missing Redis degrades to DB-only.
type SessionCache interface {
	Set(ctx context.Context, session CachedSession, ttl time.Duration) error
	Get(ctx context.Context, userID uint) (*CachedSession, error)
	Delete(ctx context.Context, userID uint) error
}

type RedisSessionCache struct {
	client *redis.Client
}

func NewRedisSessionCache(client *redis.Client) *RedisSessionCache {
	return &RedisSessionCache{client: client}
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("session:user:%d", userID)
}

func (c *RedisSessionCache) Set(ctx context.Context, session CachedSession, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, sessionKey(session.UID), payload, ttl).Err()
}

func (c *RedisSessionCache) Get(ctx context.Context, userID uint) (*CachedSession, error) {
	data, err := c.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var session CachedSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *RedisSessionCache) Delete(ctx context.Context, userID uint) error {
	return c.client.Del(ctx, sessionKey(userID)).Err()
}
