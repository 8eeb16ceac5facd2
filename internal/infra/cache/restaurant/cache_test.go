package restaurant

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

var testAdminID = uuid.MustParse("7d1f3a52-0a4b-4c53-9a6e-2f0f7c1a9b01")

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCache(client, "smc:", 5*time.Minute), mr
}

func newRestaurant(t *testing.T) *domain.Restaurant {
	t.Helper()

	created := domain.NewRestaurant(uuid.New(), "Trattoria Roma", testAdminID)
	require.True(t, created.IsSuccess())
	restaurant := created.Value()

	late := domain.NewOpeningPeriod(18*time.Hour, 26*time.Hour)
	require.True(t, late.IsSuccess())
	require.True(t, restaurant.AddRegularOpeningPeriod(4, late.Value(), testAdminID).IsSuccess())

	eve := domain.NewDate(2026, time.December, 24)
	require.True(t, restaurant.AddDeviatingOpeningDay(eve, domain.DeviatingStatusFullyBooked, testAdminID).IsSuccess())
	require.True(t, restaurant.AddAdministrator(testAdminID, testAdminID).IsSuccess())
	require.True(t, restaurant.ChangeSupportedOrderMode(domain.OrderModeAtNextShift, testAdminID).IsSuccess())
	return restaurant
}

func TestCache_SetGet(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	restaurant := newRestaurant(t)

	require.NoError(t, cache.Set(ctx, restaurant))

	key := "smc:restaurant:" + restaurant.ID().String()
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 5*time.Minute, mr.TTL(key))

	cached, ok, err := cache.Get(ctx, restaurant.ID())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, restaurant.Snapshot().RegularOpeningDays, cached.Snapshot().RegularOpeningDays)
	assert.Equal(t, restaurant.Snapshot().DeviatingOpeningDays, cached.Snapshot().DeviatingOpeningDays)
	assert.Equal(t, domain.OrderModeAtNextShift, cached.SupportedOrderMode())
	assert.True(t, cached.HasAdministrator(testAdminID))
	assert.True(t, restaurant.UpdatedOn().Equal(cached.UpdatedOn()))
}

func TestCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	cached, ok, err := cache.Get(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, cached)
}

func TestCache_Invalidate(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	restaurant := newRestaurant(t)
	require.NoError(t, cache.Set(ctx, restaurant))

	require.NoError(t, cache.Invalidate(ctx, restaurant.ID()))

	assert.False(t, mr.Exists("smc:restaurant:"+restaurant.ID().String()))
	_, ok, err := cache.Get(ctx, restaurant.ID())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_SetAfterInvalidate(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	restaurant := newRestaurant(t)
	key := "smc:restaurant:" + restaurant.ID().String()

	// Снимок прочитан до записи, а в кеш попадает уже после сброса
	stale := restaurant.Snapshot()
	require.NoError(t, cache.Invalidate(ctx, restaurant.ID()))
	assert.Equal(t, staleWindow, mr.TTL(key+":invalidated"))

	restored, err := domain.RestoreRestaurant(stale)
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, restored))
	assert.False(t, mr.Exists(key))

	_, ok, err := cache.Get(ctx, restaurant.ID())
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(staleWindow + time.Second)

	require.NoError(t, cache.Set(ctx, restaurant))
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 5*time.Minute, mr.TTL(key))
}

func TestCache_SetWithoutTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	cache := NewCache(client, "smc:", 0)
	restaurant := newRestaurant(t)

	require.NoError(t, cache.Set(context.Background(), restaurant))

	key := "smc:restaurant:" + restaurant.ID().String()
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Duration(0), mr.TTL(key))
}

func TestCache_CorruptedEntry(t *testing.T) {
	cache, mr := newTestCache(t)
	id := uuid.New()
	require.NoError(t, mr.Set("smc:restaurant:"+id.String(), "{not json"))

	_, _, err := cache.Get(context.Background(), id)

	assert.ErrorIs(t, err, ErrDecode)
}

func TestCache_RedisDown(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	_, _, err := cache.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrCacheRead)
}

func TestNopCache(t *testing.T) {
	var cache NopCache
	ctx := context.Background()

	cached, ok, err := cache.Get(ctx, uuid.New())
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, cached)
	assert.NoError(t, cache.Set(ctx, newRestaurant(t)))
	assert.NoError(t, cache.Invalidate(ctx, uuid.New()))
}
