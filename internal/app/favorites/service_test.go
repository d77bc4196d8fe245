package favorites

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/savaneats/savan/internal/adapter/logger"
)

type fakeFavoriteRepo struct {
	sets map[string]map[string]bool
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{sets: make(map[string]map[string]bool)}
}

func (r *fakeFavoriteRepo) Add(ctx context.Context, customerID, itemID string) error {
	if r.sets[customerID] == nil {
		r.sets[customerID] = make(map[string]bool)
	}
	r.sets[customerID][itemID] = true
	return nil
}

func (r *fakeFavoriteRepo) Remove(ctx context.Context, customerID, itemID string) error {
	delete(r.sets[customerID], itemID)
	return nil
}

func (r *fakeFavoriteRepo) Contains(ctx context.Context, customerID, itemID string) (bool, error) {
	return r.sets[customerID][itemID], nil
}

func (r *fakeFavoriteRepo) List(ctx context.Context, customerID string) ([]string, error) {
	var out []string
	for itemID := range r.sets[customerID] {
		out = append(out, itemID)
	}
	return out, nil
}

func TestToggleFlipsState(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeFavoriteRepo(), logger.Nop())

	on, err := svc.Toggle(ctx, "c1", "b1")
	require.NoError(t, err)
	require.True(t, on)

	isFav, err := svc.IsFavorite(ctx, "c1", "b1")
	require.NoError(t, err)
	require.True(t, isFav)

	off, err := svc.Toggle(ctx, "c1", "b1")
	require.NoError(t, err)
	require.False(t, off)

	isFav, err = svc.IsFavorite(ctx, "c1", "b1")
	require.NoError(t, err)
	require.False(t, isFav)
}

func TestFavoritesAreIsolatedByCustomer(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeFavoriteRepo(), logger.Nop())

	_, err := svc.Toggle(ctx, "c1", "b1")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "c1", "m1")
	require.NoError(t, err)

	list, err := svc.List(ctx, "c1")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"b1", "m1"}, list)

	other, err := svc.List(ctx, "c2")
	require.NoError(t, err)
	require.Empty(t, other)
}
