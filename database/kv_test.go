package database_test

import (
	"context"
	"testing"
	"time"

	"cinema_storefront/database"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisKV_GetMapsNilToNotFound(t *testing.T) {
	client, mock := redismock.NewClientMock()
	kv := database.NewRedisKV(client)
	ctx := context.Background()

	mock.ExpectGet("currentUser:s1").RedisNil()
	_, err := kv.Get(ctx, "currentUser:s1")
	assert.ErrorIs(t, err, database.ErrNotFound)

	mock.ExpectGet("currentUser:s2").SetVal(`{"id":"s2"}`)
	v, err := kv.Get(ctx, "currentUser:s2")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"s2"}`, v)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisKV_SetAndSets(t *testing.T) {
	client, mock := redismock.NewClientMock()
	kv := database.NewRedisKV(client)
	ctx := context.Background()

	mock.ExpectSet("walletBalance:u1", "42.5", time.Hour).SetVal("OK")
	require.NoError(t, kv.Set(ctx, "walletBalance:u1", "42.5", time.Hour))

	mock.ExpectSAdd("pendingBookings", "PAY_1").SetVal(1)
	require.NoError(t, kv.SAdd(ctx, "pendingBookings", "PAY_1"))

	mock.ExpectSMembers("pendingBookings").SetVal([]string{"PAY_1"})
	members, err := kv.SMembers(ctx, "pendingBookings")
	require.NoError(t, err)
	assert.Equal(t, []string{"PAY_1"}, members)

	mock.ExpectSRem("pendingBookings", "PAY_1").SetVal(1)
	require.NoError(t, kv.SRem(ctx, "pendingBookings", "PAY_1"))

	mock.ExpectDel("walletBalance:u1").SetVal(1)
	require.NoError(t, kv.Del(ctx, "walletBalance:u1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemKV(t *testing.T) {
	kv := database.NewMemKV()
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, database.ErrNotFound)

	require.NoError(t, kv.Set(ctx, "k", "v", 0))
	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	require.NoError(t, kv.SAdd(ctx, "s", "a"))
	require.NoError(t, kv.SAdd(ctx, "s", "b"))
	members, err := kv.SMembers(ctx, "s")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, members)

	require.NoError(t, kv.SRem(ctx, "s", "a"))
	members, _ = kv.SMembers(ctx, "s")
	assert.Equal(t, []string{"b"}, members)

	require.NoError(t, kv.Del(ctx, "k"))
	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, database.ErrNotFound)
}
