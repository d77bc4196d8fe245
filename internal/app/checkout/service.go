package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/savaneats/savan/internal/adapter/logger"
	"github.com/savaneats/savan/internal/config"
	"github.com/savaneats/savan/internal/domain"
	"github.com/savaneats/savan/internal/interfaces"
)

var ErrEmptyCart = errors.New("cart is empty")

// Service owns the two order write paths: placing a new order from the
// cart and cancelling an existing one.
type Service struct {
	cartRepo     interfaces.CartRepository
	orderRepo    interfaces.OrderRepository
	publisher    interfaces.MessagePublisher
	logger       logger.Logger
	deliveryFee  int64
	paymentDelay time.Duration
}

func NewService(
	cartRepo interfaces.CartRepository,
	orderRepo interfaces.OrderRepository,
	publisher interfaces.MessagePublisher,
	logger logger.Logger,
	cfg config.CheckoutConfig,
) *Service {
	return &Service{
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
		publisher:    publisher,
		logger:       logger,
		deliveryFee:  cfg.DeliveryFee,
		paymentDelay: time.Duration(cfg.PaymentDelaySeconds) * time.Second,
	}
}

// PlaceOrder snapshots the customer's cart into a new placed order.
// The payment round-trip is simulated by a fixed delay; a cancelled
// context aborts before anything is written. Order creation and cart
// clearing happen in one transaction.
func (s *Service) PlaceOrder(ctx context.Context, cmd interfaces.PlaceOrderCommand) (*domain.Order, error) {
	cart, err := s.cartRepo.Get(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	if err := s.awaitPayment(ctx); err != nil {
		return nil, err
	}

	fee := s.feeFor(cmd.Fulfillment)

	order, err := domain.NewOrder(cmd.CustomerID, cart.CloneLines(), cmd.Fulfillment, cmd.Address, cmd.PaymentMethod, fee)
	if err != nil {
		s.logger.Error("validation_failed", "Order validation failed", cmd.CustomerID, nil, err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	order.CustomerName = cmd.CustomerName
	order.CustomerPhone = cmd.CustomerPhone
	order.Instructions = cmd.Instructions

	if err := s.orderRepo.CreateAndClearCart(ctx, order); err != nil {
		s.logger.Error("db_transaction_failed", "Failed to create order", cmd.CustomerID, nil, err)
		return nil, err
	}

	s.logger.Debug("order_placed", "Order created in DB", cmd.CustomerID, map[string]interface{}{
		"order_number": order.Number,
		"total":        order.Total,
	})

	msg := interfaces.OrderPlacedMessage{
		OrderID:       order.ID,
		OrderNumber:   order.Number,
		CustomerID:    order.CustomerID,
		Fulfillment:   order.Fulfillment,
		Address:       order.Address,
		Items:         order.Items,
		Subtotal:      order.Subtotal,
		DeliveryFee:   order.DeliveryFee,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		PlacedAt:      order.CreatedAt,
	}

	if err := s.publisher.PublishOrderPlaced(ctx, msg); err != nil {
		// The order is already durable; the kitchen just will not hear
		// about it. Surface the failure to the caller.
		s.logger.Error("publish_failed", "Failed to publish order", cmd.CustomerID, nil, err)
		return nil, err
	}

	s.logger.Debug("order_published", "Order published to kitchen", cmd.CustomerID, map[string]interface{}{
		"order_number": order.Number,
	})

	return order, nil
}

// CancelOrder moves the customer's order to cancelled if its current
// status allows it. An order number belonging to someone else is
// indistinguishable from a missing one: order numbers are guessable,
// so leaking their existence is already too much.
func (s *Service) CancelOrder(ctx context.Context, customerID, orderNumber string) (*domain.Order, error) {
	order, err := s.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, domain.ErrOrderNotFound
	}

	oldStatus := order.Status
	if err := order.TransitionTo(domain.StatusCancelled, customerID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatusWithLog(ctx, order, customerID); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	notification := interfaces.StatusUpdateMessage{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		OldStatus:   oldStatus,
		NewStatus:   order.Status,
		ChangedBy:   customerID,
		Timestamp:   time.Now(),
	}
	if err := s.publisher.PublishStatusUpdate(ctx, notification); err != nil {
		s.logger.Error("publish_failed", "Failed to publish cancellation", order.CustomerID, nil, err)
	}

	return order, nil
}

// awaitPayment stands in for the payment confirmation round-trip.
func (s *Service) awaitPayment(ctx context.Context) error {
	if s.paymentDelay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.paymentDelay):
		return nil
	}
}

// feeFor applies the delivery fee only when the order is delivered;
// pickup and dine-in orders carry no fee.
func (s *Service) feeFor(mode domain.FulfillmentMode) int64 {
	if mode == domain.FulfillmentDelivery {
		return s.deliveryFee
	}
	return 0
}
