package domain

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrEmptyOrder              = errors.New("order must contain at least one item")
	ErrOrderNotFound           = errors.New("order not found")
)

// Order is a placed order. Items are a snapshot copied from the cart
// at checkout; later cart mutations never touch them. History is
// append-only: orders are created and status-updated, never deleted.
type Order struct {
	ID               string
	Number           string
	CustomerID       string
	Items            []CartLine
	Subtotal         int64
	DeliveryFee      int64
	Total            int64
	Status           Status
	Address          string
	PaymentMethod    string
	Fulfillment      FulfillmentMode
	CustomerName     string
	CustomerPhone    string
	Instructions     string
	VerificationCode string
	ProcessedBy      *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeliveredAt      *time.Time
}

// NewOrder snapshots the given lines into a new order in the placed
// state, generating the id, the human-readable order number and the
// cash-on-delivery verification code. The caller's slice is cloned,
// not referenced.
func NewOrder(customerID string, items []CartLine, fulfillment FulfillmentMode, address, paymentMethod string, deliveryFee int64) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	if !fulfillment.Valid() {
		return nil, fmt.Errorf("invalid fulfillment mode: %q", fulfillment)
	}
	if fulfillment == FulfillmentDelivery && address == "" {
		return nil, errors.New("delivery orders require an address")
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	order := &Order{
		ID:               uuid.NewString(),
		Number:           NewOrderNumber(),
		CustomerID:       customerID,
		Items:            CloneLines(items),
		DeliveryFee:      deliveryFee,
		Status:           StatusPlaced,
		Address:          address,
		PaymentMethod:    paymentMethod,
		Fulfillment:      fulfillment,
		VerificationCode: NewVerificationCode(),
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	for _, item := range order.Items {
		order.Subtotal += item.Price * int64(item.Quantity)
	}
	order.Total = order.Subtotal + order.DeliveryFee

	return order, nil
}

// NewOrderNumber returns a short human-readable order number, distinct
// from the internal order id.
func NewOrderNumber() string {
	return fmt.Sprintf("SV%d", 10000+rand.Intn(90000))
}

// NewVerificationCode returns the 4-digit code used to confirm a
// cash-on-delivery handoff. The code gates the handoff, so it must not
// be predictable from the order number or earlier codes.
func NewVerificationCode() string {
	n, err := crand.Int(crand.Reader, big.NewInt(9000))
	if err != nil {
		return fmt.Sprintf("%d", 1000+rand.Intn(9000))
	}
	return fmt.Sprintf("%d", 1000+n.Int64())
}

// CanTransitionTo checks the status transition against the lifecycle:
// placed -> preparing -> out_for_delivery -> delivered, with cancelled
// reachable from any non-terminal state.
func (o *Order) CanTransitionTo(newStatus Status) bool {
	validTransitions := map[Status][]Status{
		StatusPlaced:         {StatusPreparing, StatusCancelled},
		StatusPreparing:      {StatusOutForDelivery, StatusCancelled},
		StatusOutForDelivery: {StatusDelivered, StatusCancelled},
		StatusDelivered:      {},
		StatusCancelled:      {},
	}

	for _, s := range validTransitions[o.Status] {
		if s == newStatus {
			return true
		}
	}
	return false
}

// TransitionTo moves the order to a new status, rejecting illegal
// edges. Only the status-related fields change; items and totals stay
// untouched.
func (o *Order) TransitionTo(newStatus Status, changedBy string) error {
	if !o.CanTransitionTo(newStatus) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, o.Status, newStatus)
	}

	o.Status = newStatus
	o.UpdatedAt = time.Now()

	if changedBy != "" {
		o.ProcessedBy = &changedBy
	}

	if newStatus == StatusDelivered {
		now := time.Now()
		o.DeliveredAt = &now
	}

	return nil
}
