package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "youquote:revoked:"

// RedisRevokedTokenStore keeps revoked ids as keys that expire with the token.
type RedisRevokedTokenStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisRevokedTokenStore(client *redis.Client) *RedisRevokedTokenStore {
	return &RedisRevokedTokenStore{client: client, now: time.Now}
}

func (s *RedisRevokedTokenStore) Revoke(ctx context.Context, jti string, userID int64, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		// already expired, nothing to remember
		return nil
	}
	return s.client.Set(ctx, revokedKeyPrefix+jti, strconv.FormatInt(userID, 10), ttl).Err()
}

func (s *RedisRevokedTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// PurgeExpired is a no-op: Redis drops the keys on TTL.
func (s *RedisRevokedTokenStore) PurgeExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}
