package user

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/savaneats/savan/internal/adapter/logger"
	"github.com/savaneats/savan/internal/config"
	"github.com/savaneats/savan/internal/domain"
	"github.com/savaneats/savan/internal/interfaces"
)

type Service struct {
	repo      interfaces.ProfileRepository
	logger    logger.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewService(repo interfaces.ProfileRepository, logger logger.Logger, cfg config.AuthConfig) *Service {
	return &Service{
		repo:      repo,
		logger:    logger,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  time.Duration(cfg.TokenTTLHours) * time.Hour,
	}
}

// Login seeds the stub profile for the customer and issues a signed
// token. Logging in again replaces any existing profile.
func (s *Service) Login(ctx context.Context, customerID, phone string) (*interfaces.LoginResult, error) {
	profile := domain.StubProfile(phone)

	if err := s.repo.Save(ctx, customerID, profile); err != nil {
		return nil, err
	}

	token, err := s.issueToken(customerID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user_logged_in", fmt.Sprintf("Customer %s logged in", customerID), customerID, nil)

	return &interfaces.LoginResult{
		Profile: profile,
		Token:   token,
	}, nil
}

func (s *Service) Logout(ctx context.Context, customerID string) error {
	if err := s.repo.Delete(ctx, customerID); err != nil {
		return err
	}

	s.logger.Info("user_logged_out", fmt.Sprintf("Customer %s logged out", customerID), customerID, nil)
	return nil
}

func (s *Service) UpdateProfile(ctx context.Context, customerID string, update domain.ProfileUpdate) (*domain.Profile, error) {
	profile, err := s.repo.Find(ctx, customerID)
	if err != nil {
		return nil, err
	}

	profile.Apply(update)

	if err := s.repo.Save(ctx, customerID, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *Service) AddAddress(ctx context.Context, customerID string, address domain.Address) (*domain.Profile, error) {
	profile, err := s.repo.Find(ctx, customerID)
	if err != nil {
		return nil, err
	}

	profile.AddAddress(address)

	if err := s.repo.Save(ctx, customerID, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *Service) GetProfile(ctx context.Context, customerID string) (*domain.Profile, error) {
	return s.repo.Find(ctx, customerID)
}

func (s *Service) issueToken(customerID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   customerID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ParseToken validates a bearer token and returns the customer id it
// was issued for.
func (s *Service) ParseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	return claims.Subject, nil
}
