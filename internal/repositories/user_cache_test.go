package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-loan-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestUserCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	assert.NoError(t, rdb.Ping(ctx).Err())

	repo := NewUserCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get user", func(t *testing.T) {
		user := &models.UserDB{Username: "alice", Password: "hash", Email: "a@x.com"}

		err := repo.Set(ctx, user)
		assert.NoError(t, err)

		got, err := repo.GetByUsername(ctx, "alice")
		assert.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("Miss returns nil", func(t *testing.T) {
		got, err := repo.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Corrupt entry returns error", func(t *testing.T) {
		assert.NoError(t, rdb.Set(ctx, "user:broken", "not-json", 0).Err())

		_, err := repo.GetByUsername(ctx, "broken")
		assert.Error(t, err)
	})

	t.Run("Cached user expires", func(t *testing.T) {
		err := repo.Set(ctx, &models.UserDB{Username: "bob", Password: "hash"})
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		got, err := repo.GetByUsername(ctx, "bob")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
