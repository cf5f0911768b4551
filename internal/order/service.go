package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Lilianobi/audiophile/internal/domain"
)

var (
	// ErrMissingFields rejects an order before any persistence attempt.
	ErrMissingFields = errors.New("missing required order fields")
	ErrInvalidStatus = errors.New("invalid order status")
)

const notifyTimeout = 30 * time.Second

// Notifier delivers the order confirmation. Implementations report errors;
// the service decides that none of them matter to the caller.
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, orderID string, order domain.Order) error
}

// Service is the order submission pipeline: gate, persist, then a detached
// best-effort notification whose outcome is never surfaced to the caller.
type Service struct {
	repo     Repository
	cache    Cache
	notifier Notifier
	sfg      singleflight.Group // collapses concurrent lookups of one order
}

func NewService(repo Repository, cache Cache, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
	}
}

// Submit persists the order and returns its generated identifier. The
// confirmation email is dispatched in the background; its failure cannot
// fail the submission, since the order is already durable by then.
func (s *Service) Submit(ctx context.Context, order domain.Order) (string, error) {
	if order.Customer.Name == "" || order.Customer.Email == "" ||
		order.Shipping.Address == "" || len(order.Items) == 0 {
		return "", ErrMissingFields
	}

	id, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	s.dispatchConfirmation(id, order)

	return id, nil
}

// dispatchConfirmation fires the notification on its own goroutine and
// context. Errors are logged for operator visibility and swallowed.
func (s *Service) dispatchConfirmation(orderID string, order domain.Order) {
	if s.notifier == nil {
		log.Printf("email delivery not configured, skipping confirmation for order %s", orderID)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.SendOrderConfirmation(ctx, orderID, order); err != nil {
			log.Printf("confirmation email for order %s failed: %v", orderID, err)
		}
	}()
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(id, func() (interface{}, error) {
		o, err := s.cache.Get(ctx, id)
		if err == nil {
			return o, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			log.Printf("order cache get error: %v", err) // log cache error but continue
		}

		o, err = s.repo.GetOrderByID(ctx, id)
		if err != nil {
			return nil, err
		}

		go func() {
			if err := s.cache.Set(context.Background(), id, o); err != nil {
				log.Printf("order cache set error: %v", err)
			}
		}()

		return o, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Order), nil
}

func (s *Service) GetOrdersByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	return s.repo.GetOrdersByEmail(ctx, email)
}

// UpdateStatus moves an order past its initial pending state. The status
// string is free-form at the persistence layer; only emptiness is rejected.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	if status == "" {
		return ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	invalidateCache(s, id)
	return nil
}

func invalidateCache(s *Service, id string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, id); err != nil {
		log.Printf("order cache invalidate error: %v", err)
	}
}
