package cache

import (
	"context"
	"fmt"
	"time"
)

const denylistKeyPrefix = "revoked:%s"

func denylistKey(jti string) string {
	return fmt.Sprintf(denylistKeyPrefix, jti)
}

// RevokeToken denylists a token ID until it would have expired anyway.
// Without Redis this is a no-op: logout then degrades to client-side token
// disposal.
func RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if client == nil || jti == "" || ttl <= 0 {
		return nil
	}
	return client.Set(ctx, denylistKey(jti), "1", ttl).Err()
}

// IsTokenRevoked reports whether a token ID has been denylisted. Errors are
// treated as "not revoked" so an unavailable Redis does not lock everyone out.
func IsTokenRevoked(ctx context.Context, jti string) bool {
	if client == nil || jti == "" {
		return false
	}
	n, err := client.Exists(ctx, denylistKey(jti)).Result()
	if err != nil {
		return false
	}
	return n > 0
}
