package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/delivery-ops/internal/config"
	"github.com/spec-kit/delivery-ops/internal/domain"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	deps, _, _ := newTestDeps(t, false)
	return NewAuthService(config.AuthConfig{JWTSecret: "test", AccessTokenTTLMinutes: 5, BcryptCost: bcrypt.MinCost}, deps.Store, deps.Logger)
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t)

	user, token, _, err := svc.Register(ctx, "dispatcher", "s3cret!", nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != domain.DefaultUserRole || token == "" {
		t.Fatalf("unexpected registration result %+v token=%q", user, token)
	}
	if user.Password == "s3cret!" {
		t.Fatal("password stored in clear text")
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil || claims.UserID != user.ID {
		t.Fatalf("token does not identify user: claims=%+v err=%v", claims, err)
	}

	loggedIn, _, _, err := svc.Login(ctx, "dispatcher", "s3cret!")
	if err != nil || loggedIn.ID != user.ID {
		t.Fatalf("Login: user=%+v err=%v", loggedIn, err)
	}

	me, err := svc.Me(ctx, user.ID)
	if err != nil || me.Username != "dispatcher" {
		t.Fatalf("Me: %+v %v", me, err)
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t)

	if _, _, _, err := svc.Register(ctx, "ops", "password1", nil); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, _, _, err := svc.Register(ctx, "ops", "password2", nil)
	requireStatus(t, err, http.StatusConflict)
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t)
	if _, _, _, err := svc.Register(ctx, "ops", "password1", nil); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, _, err := svc.Login(ctx, "ops", "wrong")
	requireStatus(t, err, http.StatusUnauthorized)

	_, _, _, err = svc.Login(ctx, "nobody", "password1")
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestRegisterRejectsPasswordBcryptWouldTruncate(t *testing.T) {
	svc := newTestAuthService(t)
	_, _, _, err := svc.Register(context.Background(), "longpass", strings.Repeat("x", 73), nil)
	requireStatus(t, err, http.StatusBadRequest)
}
