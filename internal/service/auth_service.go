package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/delivery-ops/internal/auth"
	"github.com/spec-kit/delivery-ops/internal/config"
	"github.com/spec-kit/delivery-ops/internal/domain"
	"github.com/spec-kit/delivery-ops/internal/repository"
	apperrors "github.com/spec-kit/delivery-ops/pkg/util/errorutil"
)

// AuthService coordinates registration and login of console users.
type AuthService struct {
	users    repository.UserStore
	tokenMgr *auth.TokenManager
	hasher   auth.PasswordHasher
	logger   *zap.Logger
}

// NewAuthService builds the service. A nil logger disables logging.
func NewAuthService(cfg config.AuthConfig, users repository.UserStore, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		hasher:   auth.NewPasswordHasher(cfg),
		logger:   logger,
	}
}

// Register creates a console user. Usernames are unique.
func (s *AuthService) Register(ctx context.Context, username, password string, branchID *int64) (*domain.User, string, time.Time, error) {
	username = strings.TrimSpace(username)
	if _, ok, err := s.users.GetUserByUsername(ctx, username); err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	} else if ok {
		return nil, "", time.Time{}, apperrors.NewConflict("username already taken", map[string]any{"username": username})
	}

	hash, err := s.hasher.Hash(password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, "", time.Time{}, apperrors.NewValidationError("password too long", map[string]any{"password": "max=72 bytes"})
	}
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	user, err := s.users.CreateUser(ctx, domain.User{
		Username: username,
		Password: hash,
		Role:     domain.DefaultUserRole,
		BranchID: branchID,
	})
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return &user, token, exp, nil
}

// Login authenticates a console user by username and password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user, ok, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if !ok {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := s.hasher.Compare(user.Password, password); err != nil {
		if !auth.IsMismatch(err) {
			s.logger.Error("stored password hash unusable", zap.Int64("user_id", user.ID), zap.Error(err))
		}
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if s.hasher.NeedsRehash(user.Password) {
		s.logger.Info("password hash below configured cost", zap.Int64("user_id", user.ID), zap.Int("cost", s.hasher.Cost()))
	}
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return &user, token, exp, nil
}

// Me returns the user behind an authenticated request.
func (s *AuthService) Me(ctx context.Context, id int64) (*domain.User, error) {
	user, ok, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if !ok {
		return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
	}
	return &user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
