package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/malakyounes2004-ai/fitfix/internal/auth"
	"github.com/malakyounes2004-ai/fitfix/internal/config"
	"github.com/malakyounes2004-ai/fitfix/internal/domain/user"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/errors"
	"github.com/malakyounes2004-ai/fitfix/internal/pkg/logger"
)

// AuthService handles admin user login and registration
type AuthService struct {
	userRepo user.Repository
	cfg      config.AuthConfig
	logger   *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo user.Repository, cfg config.AuthConfig, log *logger.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, cfg: cfg, logger: log}
}

// Register creates a new admin user with a bcrypt password hash
func (s *AuthService) Register(ctx context.Context, email, password, fullName, role string) (*user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.BadRequest("Email is required")
	}
	if len(password) < 8 {
		return nil, errors.BadRequest("Password must be at least 8 characters")
	}
	if role == "" {
		role = user.RoleUser
	}

	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, errors.Conflict("A user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BCryptCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	u := &user.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	id, err := s.userRepo.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id

	s.logger.WithFields(map[string]interface{}{"user_id": id, "email": email}).Info("Registered user")
	return u, nil
}

// Login verifies credentials and mints a token pair
func (s *AuthService) Login(ctx context.Context, email, password string) (*user.User, auth.TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, auth.TokenPair{}, errors.Unauthorized("Invalid email or password")
	}
	if !u.IsActive {
		return nil, auth.TokenPair{}, errors.Forbidden("Account is disabled")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, auth.TokenPair{}, errors.Unauthorized("Invalid email or password")
	}

	pair, err := auth.MintTokens(u.ID, u.Email, u.Role, s.cfg.JWTSecret, s.cfg.AccessTokenExpiry, s.cfg.RefreshTokenExpiry)
	if err != nil {
		return nil, auth.TokenPair{}, errors.Internal("Failed to sign tokens", err)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, u.ID); err != nil {
		s.logger.WithError(err).Warn("Failed to record last login")
	}

	s.logger.WithFields(map[string]interface{}{"user_id": u.ID}).Info("User logged in")
	return u, pair, nil
}

// Refresh validates a refresh token and mints a new pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	claims, err := auth.ParseClaims(refreshToken, s.cfg.JWTSecret)
	if err != nil {
		return auth.TokenPair{}, errors.Unauthorized("Invalid or expired refresh token")
	}

	u, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil || u == nil || !u.IsActive {
		return auth.TokenPair{}, errors.Unauthorized("Account no longer valid")
	}

	return auth.MintTokens(u.ID, u.Email, u.Role, s.cfg.JWTSecret, s.cfg.AccessTokenExpiry, s.cfg.RefreshTokenExpiry)
}
