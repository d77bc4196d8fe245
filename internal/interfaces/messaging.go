package interfaces

import (
	"context"
	"time"

	"github.com/savaneats/savan/internal/domain"
)

// OrderPlacedMessage is routed to the kitchen simulator when checkout
// completes.
type OrderPlacedMessage struct {
	OrderID       string                 `json:"order_id"`
	OrderNumber   string                 `json:"order_number"`
	CustomerID    string                 `json:"customer_id"`
	Fulfillment   domain.FulfillmentMode `json:"fulfillment"`
	Address       string                 `json:"address,omitempty"`
	Items         []domain.CartLine      `json:"items"`
	Subtotal      int64                  `json:"subtotal"`
	DeliveryFee   int64                  `json:"delivery_fee"`
	Total         int64                  `json:"total"`
	PaymentMethod string                 `json:"payment_method"`
	PlacedAt      time.Time              `json:"placed_at"`
}

// StatusUpdateMessage fans out to notification subscribers whenever an
// order changes status.
type StatusUpdateMessage struct {
	OrderID     string        `json:"order_id"`
	OrderNumber string        `json:"order_number"`
	OldStatus   domain.Status `json:"old_status"`
	NewStatus   domain.Status `json:"new_status"`
	ChangedBy   string        `json:"changed_by"`
	Timestamp   time.Time     `json:"timestamp"`
}

type MessagePublisher interface {
	PublishOrderPlaced(ctx context.Context, msg OrderPlacedMessage) error
	PublishStatusUpdate(ctx context.Context, msg StatusUpdateMessage) error
}

type MessageConsumer interface {
	ConsumeOrders(ctx context.Context, handler OrderMessageHandler) error
	ConsumeNotifications(ctx context.Context, handler NotificationHandler) error
}

type (
	OrderMessageHandler func(ctx context.Context, body []byte) error
	NotificationHandler func(ctx context.Context, body []byte) error
)
