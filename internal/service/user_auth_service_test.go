package service

import (
	"errors"
	"testing"

	"github.com/shopease-next/internal/constants"
	"github.com/shopease-next/internal/repository"

	"gorm.io/gorm"
)

func newTestAuthService(db *gorm.DB) *UserAuthService {
	return NewUserAuthService(testConfig(), repository.NewUserRepository(db))
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestAuthService(db)

	user, err := svc.Register(RegisterInput{Email: "Alice@Example.COM", Password: "secret123", DisplayName: "Alice"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %s", user.Email)
	}
	if user.Role != constants.RoleUser {
		t.Fatalf("expected role user, got %s", user.Role)
	}
	if user.PasswordHash == "secret123" {
		t.Fatal("password stored in plain text")
	}

	if _, err := svc.Register(RegisterInput{Email: "alice@example.com", Password: "another1"}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	if _, err := svc.Register(RegisterInput{Email: "bob@example.com", Password: "short"}); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	if _, err := svc.Register(RegisterInput{Email: "not-an-email", Password: "secret123"}); !errors.Is(err, ErrEmailInvalid) {
		t.Fatalf("expected ErrEmailInvalid, got %v", err)
	}

	logged, err := svc.Login("alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.LastLoginAt == nil {
		u, _ := svc.GetByID(logged.ID)
		if u.LastLoginAt == nil {
			t.Fatal("last login not recorded")
		}
	}

	if _, err := svc.Login("alice@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login("nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAdminBlockedFromStorefrontLogin(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestAuthService(db)

	hash, _ := svc.HashPassword("admin-pass-1")
	admin := seedAdmin(t, db, "root@shopease.local", hash)

	if _, err := svc.Login(admin.Email, "admin-pass-1"); !errors.Is(err, ErrAdminLoginNotAllowed) {
		t.Fatalf("expected ErrAdminLoginNotAllowed, got %v", err)
	}

	logged, err := svc.AdminLogin(admin.Email, "admin-pass-1")
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	if logged.Role != constants.RoleAdmin {
		t.Fatalf("expected admin role, got %s", logged.Role)
	}
}

func TestAdminLoginRejectsRegularUser(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestAuthService(db)

	if _, err := svc.Register(RegisterInput{Email: "carol@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.AdminLogin("carol@example.com", "secret123"); !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestAuthService(db)

	user, err := svc.Register(RegisterInput{Email: "dave@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, _, err := svc.GenerateJWT(user)
	if err != nil {
		t.Fatalf("generate jwt failed: %v", err)
	}
	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse jwt failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email || claims.Role != constants.RoleUser {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	if _, err := svc.ParseJWT(token + "x"); err == nil {
		t.Fatal("tampered token accepted")
	}
}

func TestUpdateProfile(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestAuthService(db)

	user, _ := svc.Register(RegisterInput{Email: "erin@example.com", Password: "secret123"})

	name := "Erin"
	phone := "+91 98765 43210"
	updated, err := svc.UpdateProfile(UpdateProfileInput{UserID: user.ID, DisplayName: &name, Phone: &phone})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.DisplayName != "Erin" || updated.Phone != phone {
		t.Fatalf("profile not updated: %+v", updated)
	}
	// 未提供的字段保持原值
	if updated.Address != "" {
		t.Fatalf("address changed unexpectedly: %s", updated.Address)
	}
}
