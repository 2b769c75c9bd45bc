package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

type cachedThing struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestRedisCache_GetSet(t *testing.T) {
	cache := NewRedisCache(newTestRedis(t))
	ctx := context.Background()

	var got cachedThing
	ok, err := cache.Get(ctx, "cities:1", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "cities:1", cachedThing{Name: "Ramallah", Count: 3}, time.Minute))
	ok, err = cache.Get(ctx, "cities:1", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, cachedThing{Name: "Ramallah", Count: 3}, got)
}

func TestRedisCache_DeletePrefix(t *testing.T) {
	rdb := newTestRedis(t)
	cache := NewRedisCache(rdb)
	ctx := context.Background()

	for _, key := range []string{"cities:list:a", "cities:list:b", "hotels:list:a"} {
		require.NoError(t, cache.Set(ctx, key, cachedThing{Name: key}, time.Minute))
	}
	require.NoError(t, cache.DeletePrefix(ctx, "cities:"))

	keys, err := rdb.Keys(ctx, "*").Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"hotels:list:a"}, keys)

	require.NoError(t, cache.DeletePrefix(ctx, "nothing:"))
}

func TestNopCache(t *testing.T) {
	var cache Cache = NopCache{}
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "k", 1, time.Minute))
	var v int
	ok, err := cache.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, cache.DeletePrefix(ctx, "k"))
}
