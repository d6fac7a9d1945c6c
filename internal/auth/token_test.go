package auth

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/delivery-ops/internal/config"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	token, exp, err := tm.GenerateToken(42, "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if exp.IsZero() {
		t.Fatal("expected expiry")
	}
	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "admin" || claims.Subject != "42" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	token, _, err := NewTokenManager("a", 5).GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := NewTokenManager("b", 5).ParseToken(token); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(config.AuthConfig{BcryptCost: bcrypt.MinCost})
	hash, err := h.Hash("hunter22")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if err := h.Compare(hash, "hunter22"); err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if err := h.Compare(hash, "wrong"); !IsMismatch(err) {
		t.Fatalf("expected mismatch, got %v", err)
	}
	if h.NeedsRehash(hash) {
		t.Fatal("hash at configured cost should not need rehash")
	}
	if !NewPasswordHasher(config.AuthConfig{BcryptCost: bcrypt.MinCost + 1}).NeedsRehash(hash) {
		t.Fatal("expected rehash when configured cost increases")
	}
}

func TestPasswordHasherCost(t *testing.T) {
	cases := []struct {
		configured int
		want       int
	}{
		{0, bcrypt.DefaultCost},
		{bcrypt.MinCost, bcrypt.MinCost},
		{12, 12},
		{bcrypt.MaxCost + 1, bcrypt.DefaultCost},
	}
	for _, tc := range cases {
		if got := NewPasswordHasher(config.AuthConfig{BcryptCost: tc.configured}).Cost(); got != tc.want {
			t.Fatalf("cost %d: expected %d, got %d", tc.configured, tc.want, got)
		}
	}
}

func TestPasswordHasherRejectsLongPasswords(t *testing.T) {
	h := NewPasswordHasher(config.AuthConfig{BcryptCost: bcrypt.MinCost})
	if _, err := h.Hash(strings.Repeat("a", 73)); !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
}
