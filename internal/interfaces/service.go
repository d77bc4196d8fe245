package interfaces

import (
	"context"
	"time"

	"github.com/savaneats/savan/internal/domain"
)

type CartService interface {
	GetCart(ctx context.Context, customerID string) (*domain.Cart, error)
	AddItem(ctx context.Context, customerID string, line domain.CartLine) (*domain.Cart, error)
	RemoveItem(ctx context.Context, customerID, lineID string) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, customerID, lineID string, qty int) (*domain.Cart, error)
	ClearCart(ctx context.Context, customerID string) error
	CartTotal(ctx context.Context, customerID string) (int64, error)
}

// PlaceOrderCommand carries everything checkout needs beyond the cart
// itself. Items are snapshotted from the stored cart, not from the
// caller.
type PlaceOrderCommand struct {
	CustomerID    string
	Fulfillment   domain.FulfillmentMode
	Address       string
	PaymentMethod string
	CustomerName  string
	CustomerPhone string
	Instructions  string
}

type CheckoutService interface {
	PlaceOrder(ctx context.Context, cmd PlaceOrderCommand) (*domain.Order, error)
	// CancelOrder cancels the customer's own order. Orders belonging to
	// another customer are reported as not found.
	CancelOrder(ctx context.Context, customerID, orderNumber string) (*domain.Order, error)
}

type KitchenService interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
	ProcessOrder(ctx context.Context, msg OrderPlacedMessage) error
}

// TrackingService scopes every order-number lookup to the customer
// asking: numbers are short and guessable, so they are not capabilities.
type TrackingService interface {
	GetOrderStatus(ctx context.Context, customerID, orderNumber string) (*TrackingOrderResponse, error)
	GetOrderHistory(ctx context.Context, customerID, orderNumber string) ([]*domain.StatusLog, error)
	ListOrders(ctx context.Context, customerID string) ([]*domain.Order, error)
	// GetActiveOrder returns the customer's most recent order still in
	// flight, or domain.ErrOrderNotFound when none is.
	GetActiveOrder(ctx context.Context, customerID string) (*domain.Order, error)
	GetWorkersStatus(ctx context.Context) ([]*TrackingWorkerResponse, error)
}

type FavoritesService interface {
	Toggle(ctx context.Context, customerID, itemID string) (bool, error)
	IsFavorite(ctx context.Context, customerID, itemID string) (bool, error)
	List(ctx context.Context, customerID string) ([]string, error)
}

type UserService interface {
	Login(ctx context.Context, customerID, phone string) (*LoginResult, error)
	Logout(ctx context.Context, customerID string) error
	UpdateProfile(ctx context.Context, customerID string, update domain.ProfileUpdate) (*domain.Profile, error)
	AddAddress(ctx context.Context, customerID string, address domain.Address) (*domain.Profile, error)
	GetProfile(ctx context.Context, customerID string) (*domain.Profile, error)
}

type LoginResult struct {
	Profile *domain.Profile
	Token   string
}

type TrackingOrderResponse struct {
	OrderNumber      string
	CurrentStatus    domain.Status
	Total            int64
	VerificationCode string
	UpdatedAt        time.Time
	ProcessedBy      *string
}

type TrackingWorkerResponse struct {
	WorkerName      string
	Status          domain.WorkerStatus
	OrdersProcessed int
	LastSeen        time.Time
}
