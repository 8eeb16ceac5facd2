package restaurant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// staleWindow сколько после Invalidate запрещено записывать снимок: чтение,
// начатое до записи в БД, не должно вернуть в кеш старые часы работы
const staleWindow = 5 * time.Second

// setScript пишет снимок, только если ключ не помечен как недавно сброшенный.
// KEYS[1] - снимок, KEYS[2] - метка сброса, ARGV[1] - payload, ARGV[2] - TTL в мс
var setScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[2]) == 1 then
	return 0
end
if tonumber(ARGV[2]) > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[2])
else
	redis.call('SET', KEYS[1], ARGV[1])
end
return 1
`)

// Cache кеш снимков ресторанов в Redis
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCache создает кеш; ключи имеют вид <prefix>restaurant:<id>
func NewCache(client *redis.Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{client: client, prefix: prefix, ttl: ttl}
}

func (c *Cache) key(id uuid.UUID) string {
	return c.prefix + "restaurant:" + id.String()
}

func (c *Cache) invalidatedKey(id uuid.UUID) string {
	return c.key(id) + ":invalidated"
}

// Get возвращает (nil, false, nil) при промахе
func (c *Cache) Get(ctx context.Context, id uuid.UUID) (*domain.Restaurant, bool, error) {
	payload, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - id=%s: %v", ErrCacheRead, id, err)
	}

	var cached entry
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, false, fmt.Errorf("%w: Get - unmarshal id=%s: %v", ErrDecode, id, err)
	}

	restaurant, err := domain.RestoreRestaurant(cached.toSnapshot())
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - restore id=%s: %v", ErrDecode, id, err)
	}

	return restaurant, true, nil
}

func (c *Cache) Set(ctx context.Context, restaurant *domain.Restaurant) error {
	payload, err := json.Marshal(fromSnapshot(restaurant.Snapshot()))
	if err != nil {
		return fmt.Errorf("%w: Set - marshal id=%s: %v", ErrCacheWrite, restaurant.ID(), err)
	}

	keys := []string{c.key(restaurant.ID()), c.invalidatedKey(restaurant.ID())}
	if err := setScript.Run(ctx, c.client, keys, payload, c.ttl.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("%w: Set - id=%s: %v", ErrCacheWrite, restaurant.ID(), err)
	}

	return nil
}

// Invalidate удаляет снимок и на staleWindow блокирует Set для этого ресторана
func (c *Cache) Invalidate(ctx context.Context, id uuid.UUID) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, c.key(id))
		pipe.Set(ctx, c.invalidatedKey(id), 1, staleWindow)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: Invalidate - id=%s: %v", ErrCacheWrite, id, err)
	}
	return nil
}

// NopCache используется, когда Redis выключен в конфигурации
type NopCache struct{}

func (NopCache) Get(context.Context, uuid.UUID) (*domain.Restaurant, bool, error) {
	return nil, false, nil
}

func (NopCache) Set(context.Context, *domain.Restaurant) error {
	return nil
}

func (NopCache) Invalidate(context.Context, uuid.UUID) error {
	return nil
}
