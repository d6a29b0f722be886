package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-loan-service/internal/logger"
	"github.com/sbilibin2017/gw-loan-service/internal/models"
)

// UserCacheRepository keeps user rows in Redis. Users are never updated or
// deleted, so an entry stays valid until it expires.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewUserCacheRepository creates a new repository instance with the given TTL.
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userKey(username string) string {
	return fmt.Sprintf("user:%s", username)
}

// GetByUsername returns the cached user, or nil on a cache miss.
func (r *UserCacheRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	key := userKey(username)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("user cache get",
			"key", key,
			"hit", false,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var user models.UserDB
	if err := json.Unmarshal(val, &user); err != nil {
		logger.Log.Infow("user cache get",
			"key", key,
			"hit", true,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("user cache get",
		"key", key,
		"hit", true,
		"error", nil,
	)

	return &user, nil
}

// Set stores a user row under its username.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.UserDB) error {
	key := userKey(user.Username)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("user cache set",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}
