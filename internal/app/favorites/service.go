package favorites

import (
	"context"
	"fmt"

	"github.com/savaneats/savan/internal/adapter/logger"
	"github.com/savaneats/savan/internal/interfaces"
)

type Service struct {
	repo   interfaces.FavoriteRepository
	logger logger.Logger
}

func NewService(repo interfaces.FavoriteRepository, logger logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Toggle flips the favorite flag for an item and returns the new state.
func (s *Service) Toggle(ctx context.Context, customerID, itemID string) (bool, error) {
	isFavorite, err := s.repo.Contains(ctx, customerID, itemID)
	if err != nil {
		return false, err
	}

	if isFavorite {
		if err := s.repo.Remove(ctx, customerID, itemID); err != nil {
			return false, err
		}
		s.logger.Debug("favorite_removed", fmt.Sprintf("Item %s unfavorited", itemID), customerID, nil)
		return false, nil
	}

	if err := s.repo.Add(ctx, customerID, itemID); err != nil {
		return false, err
	}
	s.logger.Debug("favorite_added", fmt.Sprintf("Item %s favorited", itemID), customerID, nil)
	return true, nil
}

func (s *Service) IsFavorite(ctx context.Context, customerID, itemID string) (bool, error) {
	return s.repo.Contains(ctx, customerID, itemID)
}

func (s *Service) List(ctx context.Context, customerID string) ([]string, error) {
	return s.repo.List(ctx, customerID)
}
