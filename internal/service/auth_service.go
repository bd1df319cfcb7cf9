package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pengasuh_backend/internal/config"
	"pengasuh_backend/internal/model"
	"pengasuh_backend/internal/util"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const revokedTokenPrefix = "revoked_token:"

type AuthService struct {
	UserRepo UserRepositoryI
	Store    KeyValueStore
	Cfg      *config.Config
	log      *zap.Logger
	now      func() time.Time
}

func NewAuthService(userRepo UserRepositoryI, store KeyValueStore, cfg *config.Config, log *zap.Logger) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Store:    store,
		Cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

type SignUpRequest struct {
	FullName string `json:"fullName" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      *model.User `json:"user"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (*model.User, error) {
	email := normalizeEmail(req.Email)

	_, err := s.UserRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FullName: strings.TrimSpace(req.FullName),
		Email:    email,
		Password: string(hashed),
		Role:     model.Caregiver,
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		// A concurrent sign-up can win the race past the lookup above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrEmailRegistered
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.UserRepo.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrInvalidCredentials
	} else if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	token, claims, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.UserRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.log.Warn("update last login failed", zap.Uint("user_id", user.ID), zap.Error(err))
	} else {
		user.LastLogin = &now
	}

	return &Session{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      user,
	}, nil
}

// SignOut revokes the token until it would have expired anyway.
func (s *AuthService) SignOut(ctx context.Context, claims *util.Claims) error {
	if claims == nil || claims.ID == "" {
		return util.ErrUnauthorized
	}
	ttl := claims.TTL(s.now())
	if ttl == 0 {
		return nil
	}
	return s.Store.Set(ctx, revokedTokenPrefix+claims.ID, "1", ttl)
}

// ValidateToken parses the bearer token and rejects revoked sessions.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*util.Claims, error) {
	claims, err := util.ParseJWT(token, s.Cfg.JWT.Secret)
	if err != nil {
		return nil, util.ErrUnauthorized
	}

	_, err = s.Store.Get(ctx, revokedTokenPrefix+claims.ID)
	switch {
	case err == nil:
		return nil, util.ErrTokenRevoked
	case errors.Is(err, ErrCacheMiss):
		return claims, nil
	default:
		// Fails open when the store is unavailable.
		s.log.Warn("revoked token lookup failed", zap.Error(err))
		return claims, nil
	}
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}
