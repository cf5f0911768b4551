package cart

import (
	"context"

	"github.com/Lilianobi/audiophile/internal/domain"
)

// Store persists the full item list of one session's cart. Consumers define
// this interface, not the Redis implementation.
type Store interface {
	Load(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	Save(ctx context.Context, sessionID string, items []domain.CartItem) error
	Delete(ctx context.Context, sessionID string) error
}
