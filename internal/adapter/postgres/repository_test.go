package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/savaneats/savan/internal/domain"
)

type fakeRow struct {
	err  error
	data []byte
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.data
	return nil
}

type fakeDB struct {
	row fakeRow
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) Row { return db.row }

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return nil, errors.New("not implemented")
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return nil, errors.New("not implemented")
}

func (db *fakeDB) Begin(ctx context.Context) (Tx, error) {
	return nil, errors.New("not implemented")
}

func (db *fakeDB) Close() {}

func TestCartGetMissingRowMeansEmptyCart(t *testing.T) {
	repo := NewCartRepository(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}})

	cart, err := repo.Get(context.Background(), "cust-1")
	require.NoError(t, err)
	require.Equal(t, "cust-1", cart.CustomerID)
	require.True(t, cart.IsEmpty())
}

func TestCartGetPropagatesQueryErrors(t *testing.T) {
	// A transient failure must never come back as an empty cart: the
	// caller would save it and wipe the customer's real one.
	repo := NewCartRepository(&fakeDB{row: fakeRow{err: errors.New("connection refused")}})

	cart, err := repo.Get(context.Background(), "cust-1")
	require.Nil(t, cart)
	require.ErrorContains(t, err, "connection refused")
}

func TestCartGetUnmarshalsStoredLines(t *testing.T) {
	stored := []byte(`[{"id":"l1","menu_item_id":"b1","name":"Sunrise Stack","price":850,"quantity":2}]`)
	repo := NewCartRepository(&fakeDB{row: fakeRow{data: stored}})

	cart, err := repo.Get(context.Background(), "cust-1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	require.Equal(t, "b1", cart.Lines[0].MenuItemID)
	require.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestProfileFindMissingRowMeansNoActiveProfile(t *testing.T) {
	repo := NewProfileRepository(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}})

	_, err := repo.Find(context.Background(), "cust-1")
	require.ErrorIs(t, err, domain.ErrNoActiveProfile)
}

func TestProfileFindPropagatesQueryErrors(t *testing.T) {
	repo := NewProfileRepository(&fakeDB{row: fakeRow{err: errors.New("connection refused")}})

	_, err := repo.Find(context.Background(), "cust-1")
	require.NotErrorIs(t, err, domain.ErrNoActiveProfile)
	require.ErrorContains(t, err, "connection refused")
}
