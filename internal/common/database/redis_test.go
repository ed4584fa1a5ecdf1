package database

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedRedis(t *testing.T) (*RedisClient, redismock.ClientMock) {
	t.Helper()

	db, mock := redismock.NewClientMock()
	t.Cleanup(func() { db.Close() })

	return &RedisClient{Client: db}, mock
}

func TestRedisClient_SetAndGet(t *testing.T) {
	client, mock := newMockedRedis(t)
	ctx := context.Background()

	mock.ExpectSet("profile:user-1", "payload", 5*time.Minute).SetVal("OK")
	mock.ExpectGet("profile:user-1").SetVal("payload")

	require.NoError(t, client.Set(ctx, "profile:user-1", "payload", 5*time.Minute))

	val, err := client.Get(ctx, "profile:user-1")
	require.NoError(t, err)
	assert.Equal(t, "payload", val)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Del(t *testing.T) {
	client, mock := newMockedRedis(t)

	mock.ExpectDel("profile:user-1", "profile:user-2").SetVal(2)

	require.NoError(t, client.Del(context.Background(), "profile:user-1", "profile:user-2"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Ping(t *testing.T) {
	client, mock := newMockedRedis(t)

	mock.ExpectPing().SetVal("PONG")

	assert.NoError(t, client.Ping(context.Background()))
}
