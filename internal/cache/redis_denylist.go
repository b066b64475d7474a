package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisDenylist struct {
	rdb *redis.Client
}

func NewRedisDenylist(rdb *redis.Client) *RedisDenylist {
	return &RedisDenylist{rdb: rdb}
}

func key(jti string) string { return "revoked:" + jti }

func (d *RedisDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// already past expiry; nothing to record
		return nil
	}
	return d.rdb.Set(ctx, key(jti), "1", ttl).Err()
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, err := d.rdb.Get(ctx, key(jti)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
