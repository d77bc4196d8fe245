package cart

import (
	"context"
	"fmt"

	"github.com/savaneats/savan/internal/adapter/logger"
	"github.com/savaneats/savan/internal/domain"
	"github.com/savaneats/savan/internal/interfaces"
)

// Service implements the cart operations over a persisted per-customer
// cart. Operations on missing line ids are silent no-ops; the only
// rejected input is a non-positive add quantity.
type Service struct {
	repo   interfaces.CartRepository
	logger logger.Logger
}

func NewService(repo interfaces.CartRepository, logger logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetCart(ctx context.Context, customerID string) (*domain.Cart, error) {
	return s.repo.Get(ctx, customerID)
}

func (s *Service) AddItem(ctx context.Context, customerID string, line domain.CartLine) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	added, err := cart.Add(line)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}

	s.logger.Debug("cart_item_added", fmt.Sprintf("Added %s to cart", added.Name), customerID, map[string]interface{}{
		"line_id":  added.ID,
		"quantity": added.Quantity,
	})

	return cart, nil
}

func (s *Service) RemoveItem(ctx context.Context, customerID, lineID string) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	cart.Remove(lineID)

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}

	return cart, nil
}

func (s *Service) UpdateQuantity(ctx context.Context, customerID, lineID string, qty int) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	cart.SetQuantity(lineID, qty)

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}

	return cart, nil
}

func (s *Service) ClearCart(ctx context.Context, customerID string) error {
	return s.repo.Delete(ctx, customerID)
}

func (s *Service) CartTotal(ctx context.Context, customerID string) (int64, error) {
	cart, err := s.repo.Get(ctx, customerID)
	if err != nil {
		return 0, err
	}
	return cart.Subtotal(), nil
}
