package domain

import "time"

type FulfillmentMode string

const (
	FulfillmentDelivery FulfillmentMode = "delivery"
	FulfillmentPickup   FulfillmentMode = "pickup"
	FulfillmentDineIn   FulfillmentMode = "dine_in"
)

func (m FulfillmentMode) Valid() bool {
	switch m {
	case FulfillmentDelivery, FulfillmentPickup, FulfillmentDineIn:
		return true
	}
	return false
}

type Status string

const (
	StatusPlaced         Status = "placed"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

// IsTerminal reports whether no further transition can leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// StatusLog is one entry in an order's append-only status history.
type StatusLog struct {
	ID        int
	OrderID   string
	Status    Status
	ChangedBy string
	ChangedAt time.Time
	Notes     *string
}
