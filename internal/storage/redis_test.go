package storage

import (
	"context"
	"testing"
	"time"

	"menuboard/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, 5*time.Minute), mini
}

func TestPageCacheRoundtrip(t *testing.T) {
	store, mini := newMiniRedisStore(t)
	ctx := context.Background()

	page := &domain.MenuPage{
		Restaurant: domain.RestaurantProfile{OwnerID: "rest-1", Name: "Trattoria"},
		Items: []domain.MenuItem{
			{ID: "a", RestaurantID: "rest-1", Name: "Bruschetta", Category: "Starters"},
		},
		Categories: []string{"all", "Starters"},
	}

	require.NoError(t, store.SetPage(ctx, "rest-1", page))
	assert.True(t, mini.Exists("menupage:rest-1"))

	got, err := store.GetPage(ctx, "rest-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Trattoria", got.Restaurant.Name)
	assert.Equal(t, page.Categories, got.Categories)
}

func TestPageCacheMissIsNotAnError(t *testing.T) {
	store, _ := newMiniRedisStore(t)

	got, err := store.GetPage(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPageCacheExpires(t *testing.T) {
	store, mini := newMiniRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetPage(ctx, "rest-1", &domain.MenuPage{}))
	mini.FastForward(6 * time.Minute)

	got, err := store.GetPage(ctx, "rest-1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestViewCounters(t *testing.T) {
	store, _ := newMiniRedisStore(t)
	ctx := context.Background()
	day := "2025-03-14"

	require.NoError(t, store.IncrementView(ctx, "rest-1", day))
	require.NoError(t, store.IncrementView(ctx, "rest-1", day))
	require.NoError(t, store.IncrementView(ctx, "rest-2", day))

	views, err := store.RestaurantViews(ctx, "rest-1", day)
	require.NoError(t, err)
	assert.Equal(t, int64(2), views)

	total, err := store.TotalViews(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestViewCountersEmptyDay(t *testing.T) {
	store, _ := newMiniRedisStore(t)
	ctx := context.Background()

	views, err := store.RestaurantViews(ctx, "rest-1", "2025-03-15")
	require.NoError(t, err)
	assert.Zero(t, views)

	total, err := store.TotalViews(ctx, "2025-03-15")
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestViewCountersCarryTTL(t *testing.T) {
	store, mini := newMiniRedisStore(t)
	ctx := context.Background()
	day := "2025-03-14"

	require.NoError(t, store.IncrementView(ctx, "rest-1", day))

	ttl := mini.TTL(store.DailyViewsKey(day))
	assert.Equal(t, 30*24*time.Hour, ttl)
}
