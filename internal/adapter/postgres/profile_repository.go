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

// Profiles are stored as one JSONB document per customer, like carts.
type profileRepository struct {
	db DB
}

func NewProfileRepository(db DB) interfaces.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Find(ctx context.Context, customerID string) (*domain.Profile, error) {
	var profileJSON []byte
	err := r.db.QueryRow(ctx,
		`SELECT profile FROM profiles WHERE customer_id = $1`,
		customerID,
	).Scan(&profileJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNoActiveProfile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile domain.Profile
	if err := json.Unmarshal(profileJSON, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

func (r *profileRepository) Save(ctx context.Context, customerID string, profile *domain.Profile) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO profiles (customer_id, profile, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (customer_id) DO UPDATE SET
			profile = $2,
			updated_at = now()`,
		customerID, profileJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (r *profileRepository) Delete(ctx context.Context, customerID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
