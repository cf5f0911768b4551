package cart

import (
	"context"
	"fmt"

	"github.com/Lilianobi/audiophile/internal/domain"
)

// Service owns all cart mutations. Every operation reads the current item
// list, computes the next state, and replaces it in the store as a whole.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	return s.store.Load(ctx, sessionID)
}

// AddToCart merges by product id: an existing line's quantity grows by
// item.Quantity, otherwise the item is appended. Quantity defaults to 1.
func (s *Service) AddToCart(ctx context.Context, sessionID string, item domain.CartItem) ([]domain.CartItem, error) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	if err := s.store.Save(ctx, sessionID, items); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return items, nil
}

// UpdateQuantity sets a line's quantity exactly; zero or negative removes
// the line. An unknown product id is a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) ([]domain.CartItem, error) {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, sessionID, productID)
	}

	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			break
		}
	}

	if err := s.store.Save(ctx, sessionID, items); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return items, nil
}

func (s *Service) RemoveFromCart(ctx context.Context, sessionID, productID string) ([]domain.CartItem, error) {
	items, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next := items[:0]
	for _, item := range items {
		if item.ID != productID {
			next = append(next, item)
		}
	}

	if err := s.store.Save(ctx, sessionID, next); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return next, nil
}

func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
