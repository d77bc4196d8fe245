package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/savaneats/savan/internal/domain"
	"github.com/savaneats/savan/internal/interfaces"
)

// Carts are stored as one JSONB document per customer, mirroring the
// in-memory shape exactly.
type cartRepository struct {
	db DB
}

func NewCartRepository(db DB) interfaces.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Get(ctx context.Context, customerID string) (*domain.Cart, error) {
	var linesJSON []byte
	err := r.db.QueryRow(ctx,
		`SELECT lines FROM carts WHERE customer_id = $1`,
		customerID,
	).Scan(&linesJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		// No stored cart means an empty cart, not an error.
		return &domain.Cart{CustomerID: customerID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var lines []domain.CartLine
	if len(linesJSON) > 0 {
		if err := json.Unmarshal(linesJSON, &lines); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cart lines: %w", err)
		}
	}
	return &domain.Cart{CustomerID: customerID, Lines: lines}, nil
}

func (r *cartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	linesJSON, err := json.Marshal(cart.Lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart lines: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO carts (customer_id, lines, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (customer_id) DO UPDATE SET
			lines = $2,
			updated_at = now()`,
		cart.CustomerID, linesJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, customerID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM carts WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
