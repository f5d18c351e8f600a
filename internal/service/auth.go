package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/morem6161/bcsme/internal/domain"
	"github.com/morem6161/bcsme/internal/logger"
	"github.com/morem6161/bcsme/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	adminRepo repository.AdminUserRepository
}

func NewAuthService(adminRepo repository.AdminUserRepository) AuthService {
	return &authService{adminRepo: adminRepo}
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.AdminUser, error) {
	user, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

func (s *authService) EnsureBootstrapAdmin(ctx context.Context, username, password, email string) error {
	_, err := s.adminRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrAdminNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	if password == "" {
		return fmt.Errorf("bootstrap admin password is required when no admin user exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &domain.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		Role:         "admin",
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Warn("Default admin user created; change the password immediately", "username", username)
	return nil
}
