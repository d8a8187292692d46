package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionCache caches validated session cookies in Redis with a TTL so the
// auth middleware does not hit Authorizer on every request. Keys are digests
// of the cookie; the raw token never reaches Redis.
type SessionCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSessionCache connects to Redis and returns a cache, or nil (no caching)
// when addr is empty or Redis is unreachable.
func NewSessionCache(addr, password string, ttl time.Duration) *SessionCache {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: 0})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil
	}
	return &SessionCache{rdb: rdb, ttl: ttl}
}

func sessionKey(cookie string) string {
	sum := sha256.Sum256([]byte(cookie))
	return "authz:sess:" + hex.EncodeToString(sum[:])
}

// Get returns the cached user id for a session cookie.
func (s *SessionCache) Get(ctx context.Context, cookie string) (string, bool) {
	userID, err := s.rdb.Get(ctx, sessionKey(cookie)).Result()
	if err != nil {
		return "", false
	}
	return userID, true
}

// Set caches the user id for a session cookie. Errors are ignored; the cache
// is an optimization, not a source of truth.
func (s *SessionCache) Set(ctx context.Context, cookie, userID string) {
	_ = s.rdb.Set(ctx, sessionKey(cookie), userID, s.ttl).Err()
}

// Invalidate drops a cached session.
func (s *SessionCache) Invalidate(ctx context.Context, cookie string) {
	_ = s.rdb.Del(ctx, sessionKey(cookie)).Err()
}

// Close releases the Redis connection.
func (s *SessionCache) Close() error {
	return s.rdb.Close()
}
