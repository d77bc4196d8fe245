package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/savaneats/savan/internal/adapter/logger"
	"github.com/savaneats/savan/internal/domain"
)

type fakeCartRepo struct {
	carts map[string]*domain.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*domain.Cart)}
}

func (r *fakeCartRepo) Get(ctx context.Context, customerID string) (*domain.Cart, error) {
	if cart, ok := r.carts[customerID]; ok {
		return &domain.Cart{CustomerID: cart.CustomerID, Lines: domain.CloneLines(cart.Lines)}, nil
	}
	return &domain.Cart{CustomerID: customerID}, nil
}

func (r *fakeCartRepo) Save(ctx context.Context, cart *domain.Cart) error {
	r.carts[cart.CustomerID] = &domain.Cart{CustomerID: cart.CustomerID, Lines: domain.CloneLines(cart.Lines)}
	return nil
}

func (r *fakeCartRepo) Delete(ctx context.Context, customerID string) error {
	delete(r.carts, customerID)
	return nil
}

func testLine(menuItemID string, price int64, qty int) domain.CartLine {
	return domain.CartLine{
		MenuItemID: menuItemID,
		Name:       "Item " + menuItemID,
		Price:      price,
		Quantity:   qty,
	}
}

func TestAddItemPersistsAndMerges(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeCartRepo(), logger.Nop())

	cart, err := svc.AddItem(ctx, "c1", testLine("b1", 450, 2))
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)

	cart, err = svc.AddItem(ctx, "c1", testLine("b1", 450, 1))
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	require.Equal(t, 3, cart.Lines[0].Quantity)

	// A fresh read sees the persisted state, not a stale copy.
	cart, err = svc.GetCart(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, 3, cart.Lines[0].Quantity)
}

func TestUpdateQuantityRemovesAtZero(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeCartRepo(), logger.Nop())

	cart, err := svc.AddItem(ctx, "c1", testLine("b1", 450, 2))
	require.NoError(t, err)
	lineID := cart.Lines[0].ID

	cart, err = svc.UpdateQuantity(ctx, "c1", lineID, 0)
	require.NoError(t, err)
	require.True(t, cart.IsEmpty())
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeCartRepo(), logger.Nop())

	cart, err := svc.AddItem(ctx, "c1", testLine("b1", 450, 1))
	require.NoError(t, err)

	cart, err = svc.RemoveItem(ctx, "c1", cart.Lines[0].ID)
	require.NoError(t, err)
	require.True(t, cart.IsEmpty())
}

func TestClearCartAndTotal(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeCartRepo(), logger.Nop())

	_, err := svc.AddItem(ctx, "c1", testLine("b1", 450, 2))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "c1", testLine("m1", 250, 1))
	require.NoError(t, err)

	total, err := svc.CartTotal(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, int64(1150), total)

	require.NoError(t, svc.ClearCart(ctx, "c1"))

	total, err = svc.CartTotal(ctx, "c1")
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestCartsAreIsolatedByCustomer(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeCartRepo(), logger.Nop())

	_, err := svc.AddItem(ctx, "c1", testLine("b1", 450, 1))
	require.NoError(t, err)

	cart, err := svc.GetCart(ctx, "c2")
	require.NoError(t, err)
	require.True(t, cart.IsEmpty())
}
