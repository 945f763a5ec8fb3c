package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anjabuckley/wortwunder-backend/internal/logger"
)

const revokedTokenPrefix = "revoked_token:"

// SessionRepository tracks revoked session tokens in Redis. Logging a
// user out stores the token id until the token would have expired
// anyway, so revoked tokens stop authenticating immediately.
type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

// Revoke marks the token id as revoked for ttl. A non-positive ttl
// means the token already expired and there is nothing to store.
func (r *SessionRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	err := r.rdb.Set(ctx, revokedTokenPrefix+tokenID, 1, ttl).Err()

	logger.Log.Infow("token revoke",
		"token_id", tokenID,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether the token id has been revoked.
func (r *SessionRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.rdb.Exists(ctx, revokedTokenPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
