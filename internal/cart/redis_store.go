package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Lilianobi/audiophile/internal/domain"
)

const cartTTL = 30 * 24 * time.Hour

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, ttl: cartTTL}
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// Load returns the stored item list for the session. A missing key or an
// undecodable value both yield an empty cart; corruption is logged, never
// surfaced.
func (r *RedisStore) Load(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	data, err := r.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("discarding undecodable cart for session %s: %v", sessionID, err)
		return nil, nil
	}

	return items, nil
}

func (r *RedisStore) Save(ctx context.Context, sessionID string, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err := r.client.Set(ctx, cartKey(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}
