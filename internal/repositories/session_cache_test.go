package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/modmarket/modmarket/internal/models"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "6379")

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port.Int()),
	})

	teardown := func() {
		client.Close()
		container.Terminate(context.Background())
	}

	return client, teardown
}

func TestSessionCacheRepository_SetAndGet(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewSessionCacheRepository(client)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	session := models.SessionDB{
		SessionID: uuid.New(),
		Token:     "tok1",
		UserID:    uuid.New(),
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}

	assert.NoError(t, repo.Set(ctx, session))

	got, err := repo.Get(ctx, "tok1")
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, session.SessionID, got.SessionID)
	assert.Equal(t, session.UserID, got.UserID)
	assert.True(t, session.ExpiresAt.Equal(got.ExpiresAt))
}

func TestSessionCacheRepository_Get_Miss(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewSessionCacheRepository(client)

	got, err := repo.Get(context.Background(), "unknown")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionCacheRepository_Set_LapsedSessionNotCached(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewSessionCacheRepository(client)
	ctx := context.Background()

	session := models.SessionDB{
		SessionID: uuid.New(),
		Token:     "tok-lapsed",
		UserID:    uuid.New(),
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	assert.NoError(t, repo.Set(ctx, session))

	got, err := repo.Get(ctx, "tok-lapsed")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionCacheRepository_TTLMatchesSessionExpiry(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewSessionCacheRepository(client)
	ctx := context.Background()

	session := models.SessionDB{
		SessionID: uuid.New(),
		Token:     "tok-ttl",
		UserID:    uuid.New(),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	assert.NoError(t, repo.Set(ctx, session))

	ttl, err := client.TTL(ctx, "session:tok-ttl").Result()
	assert.NoError(t, err)
	assert.Greater(t, ttl, 55*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)
}
