package interfaces

import (
	"context"

	"github.com/savaneats/savan/internal/domain"
)

type CartRepository interface {
	// Get returns the customer's cart, or an empty cart if none is stored.
	Get(ctx context.Context, customerID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, customerID string) error
}

type OrderRepository interface {
	// CreateAndClearCart persists the order (with its initial status
	// log entry) and removes the customer's cart in one transaction.
	CreateAndClearCart(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByNumber(ctx context.Context, number string) (*domain.Order, error)
	// ListByCustomer returns orders newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error)
	UpdateStatusWithLog(ctx context.Context, order *domain.Order, changedBy string) error
	GetStatusHistory(ctx context.Context, orderID string) ([]*domain.StatusLog, error)
}

type FavoriteRepository interface {
	Add(ctx context.Context, customerID, itemID string) error
	Remove(ctx context.Context, customerID, itemID string) error
	Contains(ctx context.Context, customerID, itemID string) (bool, error)
	List(ctx context.Context, customerID string) ([]string, error)
}

type ProfileRepository interface {
	// Find returns domain.ErrNoActiveProfile when the customer has no
	// stored profile.
	Find(ctx context.Context, customerID string) (*domain.Profile, error)
	Save(ctx context.Context, customerID string, profile *domain.Profile) error
	Delete(ctx context.Context, customerID string) error
}

type WorkerRepository interface {
	Create(ctx context.Context, worker *domain.Worker) error
	FindByName(ctx context.Context, name string) (*domain.Worker, error)
	Update(ctx context.Context, worker *domain.Worker) error
	UpdateHeartbeat(ctx context.Context, name string) error
	ListAll(ctx context.Context) ([]*domain.Worker, error)
	IncrementOrdersProcessed(ctx context.Context, name string) error
}
