package cart

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lilianobi/audiophile/internal/domain"
)

func setupTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client), mr
}

func TestLoad_MissingKeyIsEmptyCart(t *testing.T) {
	store, _ := setupTestStore(t)

	items, err := store.Load(context.Background(), "fresh-session")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	saved := []domain.CartItem{
		{ID: "xx99-mark-two-headphones", Name: "XX99 MK II", Price: 2999, Quantity: 1, Image: "/assets/cart/image-xx99-mark-two-headphones.jpg"},
		{ID: "yx1-earphones", Name: "YX1", Price: 599, Quantity: 2, Image: "/assets/cart/image-yx1-earphones.jpg"},
	}

	require.NoError(t, store.Save(ctx, "s1", saved))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoad_CorruptValueIsDiscarded(t *testing.T) {
	store, mr := setupTestStore(t)

	require.NoError(t, mr.Set("cart:s1", "{not json"))

	items, err := store.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSave_SetsExpiry(t *testing.T) {
	store, mr := setupTestStore(t)

	require.NoError(t, store.Save(context.Background(), "s1", []domain.CartItem{
		{ID: "zx7-speaker", Price: 3500, Quantity: 1},
	}))

	assert.Greater(t, mr.TTL("cart:s1").Seconds(), 0.0)
}

func TestDelete(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", []domain.CartItem{
		{ID: "zx9-speaker", Price: 4500, Quantity: 1},
	}))
	require.NoError(t, store.Delete(ctx, "s1"))

	items, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)
}
