package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Lilianobi/audiophile/internal/domain"
)

var ErrCacheMiss = errors.New("cache miss")

// Cache is a read-through cache for order lookups. Orders are written once,
// so entries only need invalidation on status updates.
type Cache interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
	Set(ctx context.Context, id string, order *domain.Order) error
	Delete(ctx context.Context, id string) error
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r *RedisCache) Get(ctx context.Context, id string) (*domain.Order, error) {
	data, err := r.client.Get(ctx, orderKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("unmarshal order failed: %w", err)
	}
	order.ID = id

	return &order, nil
}

func (r *RedisCache) Set(ctx context.Context, id string, order *domain.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order failed: %w", err)
	}

	// Jitter spreads expiry so entries don't fall out together.
	ttl := r.baseTTL + time.Duration(rand.Intn(5))*time.Minute
	if err := r.client.Set(ctx, orderKey(id), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, orderKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func orderKey(id string) string {
	return "order:" + id
}
