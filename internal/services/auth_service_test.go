package services

import (
	"context"
	"testing"
	"time"

	"github.com/malakyounes2004-ai/fitfix/internal/config"
	"github.com/malakyounes2004-ai/fitfix/internal/testutil"
)

func newAuthService(repo *testutil.MockUserRepository) *AuthService {
	cfg := config.AuthConfig{
		JWTSecret:          "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
		BCryptCost:         4,
	}
	return NewAuthService(repo, cfg, testLogger())
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	svc := newAuthService(repo)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Admin@FitFix.Test", "correct-horse", "Admin", "")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if u.Email != "admin@fitfix.test" {
		t.Errorf("Email = %q, want lowercased", u.Email)
	}
	if u.PasswordHash == "correct-horse" {
		t.Error("password stored in plain text")
	}

	logged, pair, err := svc.Login(ctx, "admin@fitfix.test", "correct-horse")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if logged.ID != u.ID {
		t.Errorf("Login() user ID = %d, want %d", logged.ID, u.ID)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Error("Login() returned empty token pair")
	}

	refreshed, err := svc.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("Refresh() returned empty access token")
	}
}

func TestAuthService_LoginFailures(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	svc := newAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "admin@fitfix.test", "correct-horse", "Admin", ""); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@fitfix.test", "wrong"},
		{"unknown email", "ghost@fitfix.test", "correct-horse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.Login(ctx, tt.email, tt.password); err == nil {
				t.Error("Login() succeeded, want error")
			}
		})
	}
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc := newAuthService(testutil.NewMockUserRepository())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "", "correct-horse", "", ""); err == nil {
		t.Error("Register() accepted empty email")
	}
	if _, err := svc.Register(ctx, "a@b.test", "short", "", ""); err == nil {
		t.Error("Register() accepted a short password")
	}

	if _, err := svc.Register(ctx, "dup@fitfix.test", "correct-horse", "", ""); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if _, err := svc.Register(ctx, "dup@fitfix.test", "correct-horse", "", ""); err == nil {
		t.Error("Register() accepted a duplicate email")
	}
}
