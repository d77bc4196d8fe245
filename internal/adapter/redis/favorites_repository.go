// Package redis keeps each customer's favorite item ids in a Redis
// set, which gives toggle semantics and duplicate-free membership for
// free.
package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/savaneats/savan/internal/config"
	"github.com/savaneats/savan/internal/interfaces"
)

func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

type favoriteRepository struct {
	client *redis.Client
}

func NewFavoriteRepository(client *redis.Client) interfaces.FavoriteRepository {
	return &favoriteRepository{client: client}
}

func favoritesKey(customerID string) string {
	return "favorites:" + customerID
}

func (r *favoriteRepository) Add(ctx context.Context, customerID, itemID string) error {
	if err := r.client.SAdd(ctx, favoritesKey(customerID), itemID).Err(); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, customerID, itemID string) error {
	if err := r.client.SRem(ctx, favoritesKey(customerID), itemID).Err(); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepository) Contains(ctx context.Context, customerID, itemID string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, favoritesKey(customerID), itemID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return ok, nil
}

func (r *favoriteRepository) List(ctx context.Context, customerID string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, favoritesKey(customerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return ids, nil
}
