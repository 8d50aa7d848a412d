package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/gophfeed/internal/logger"
	"github.com/dtroode/gophfeed/internal/model"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// Auth is the identity provider: it registers users and issues sessions.
type Auth struct {
	userStore    model.UserStore
	tokenService *TokenService
	logger       *logger.Logger
	hashCost     int
}

func NewAuth(
	userStore model.UserStore,
	refreshTokenStore model.RefreshTokenStore,
	logger *logger.Logger,
	tokenManager model.TokenManager,
) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenService: NewTokenService(tokenManager, refreshTokenStore, userStore, logger),
		logger:       logger,
		hashCost:     bcrypt.DefaultCost,
	}
}

// Tokens exposes the token service used by the provider.
func (a *Auth) Tokens() *TokenService {
	return a.tokenService
}

// SignUp creates an account and signs it in.
func (a *Auth) SignUp(ctx context.Context, email, password, displayName string) (model.Session, error) {
	const op = "sign up"

	email, err := normalizeEmail(email)
	if err != nil {
		return model.Session{}, model.NewError(model.KindValidation, op, err)
	}
	if len(password) < MinPasswordLength {
		return model.Session{}, model.Errorf(model.KindValidation, op,
			"password must be at least %d characters", MinPasswordLength)
	}

	a.logger.Debug("Auth service: starting user registration", "login", email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.hashCost)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        email,
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, model.ErrEmailTaken) {
		a.logger.Info("Auth service: user already exists", "login", email)
		return model.Session{}, model.NewError(model.KindValidation, op, err)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"login", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	session, err := a.tokenService.Issue(ctx, user.Principal())
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"login", email,
		"user_id", user.ID)

	return session, nil
}

// SignIn verifies the credentials and starts a session.
func (a *Auth) SignIn(ctx context.Context, email, password string) (model.Session, error) {
	const op = "sign in"

	email, err := normalizeEmail(email)
	if err != nil {
		return model.Session{}, model.NewError(model.KindValidation, op, err)
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.Session{}, model.NewError(model.KindAuth, op, model.ErrInvalidCredentials)
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		a.logger.Info("Auth service: password mismatch", "login", email)
		return model.Session{}, model.NewError(model.KindAuth, op, model.ErrInvalidCredentials)
	}

	session, err := a.tokenService.Issue(ctx, user.Principal())
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed successfully",
		"login", email,
		"user_id", user.ID)

	return session, nil
}

// Refresh restores a session from its refresh token.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (model.Session, error) {
	return a.tokenService.Refresh(ctx, refreshToken)
}

// SignOut revokes the refresh token of a session.
func (a *Auth) SignOut(ctx context.Context, refreshToken string) error {
	return a.tokenService.RevokeByToken(ctx, refreshToken)
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", errors.New("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("invalid email %q", email)
	}
	return email, nil
}
