package order

import (
	"context"
	"errors"

	"github.com/Lilianobi/audiophile/internal/domain"
)

var ErrOrderNotFound = errors.New("order not found")

// Repository defines the interface for order persistence.
// Consumers define this interface, not the MongoDB implementation.
type Repository interface {
	// CreateOrder persists a new order and returns its generated identifier.
	CreateOrder(ctx context.Context, order domain.Order) (string, error)
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)
	// GetOrdersByEmail returns a customer's orders, most recent first.
	GetOrdersByEmail(ctx context.Context, email string) ([]domain.Order, error)
	// UpdateStatus sets the status and the updated-at timestamp.
	UpdateStatus(ctx context.Context, id, status string) error
}
