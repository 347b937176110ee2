package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dwieght/deer-sub000/internal/auth"
	"github.com/Dwieght/deer-sub000/internal/config"
	"github.com/Dwieght/deer-sub000/internal/models"
	"github.com/Dwieght/deer-sub000/internal/repository"
)

// ErrInvalidCredentials covers unknown email and wrong password alike;
// the two are never distinguished to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.AdminUser, string, error)
	UpsertAdmin(ctx context.Context, email, password string) (*models.AdminUser, error)
}

type authService struct {
	adminRepo repository.AdminRepository
	cfg       *config.Config
}

func NewAuthService(adminRepo repository.AdminRepository, cfg *config.Config) AuthService {
	return &authService{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// Login verifies the credential and issues a session token on success.
func (s *authService) Login(ctx context.Context, email, password string) (*models.AdminUser, string, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to load credential: %w", err)
	}

	if !auth.VerifyPassword(password, admin.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.IssueToken(s.cfg.SessionSecret, admin.AdminID, admin.Email, s.cfg.SessionDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	return admin, token, nil
}

// UpsertAdmin hashes the password and inserts or replaces the credential
// for the email.
func (s *authService) UpsertAdmin(ctx context.Context, email, password string) (*models.AdminUser, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin, err := s.adminRepo.Upsert(ctx, strings.ToLower(strings.TrimSpace(email)), hash)
	if err != nil {
		return nil, err
	}

	return admin, nil
}
