package cache

import (
	"context"
	"time"
)

// Denylist records revoked token ids until their natural expiry. Logout is
// the only writer; the auth middleware is the only reader.
type Denylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
