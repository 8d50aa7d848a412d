package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/gophfeed/internal/logger"
	"github.com/dtroode/gophfeed/internal/model"
)

// TokenService provides high-level operations for issuing, refreshing,
// and revoking tokens. It composes the TokenManager and RefreshTokenStore.
type TokenService struct {
	manager model.TokenManager
	store   model.RefreshTokenStore
	users   model.UserStore
	logger  *logger.Logger
	now     func() time.Time
}

func NewTokenService(manager model.TokenManager, store model.RefreshTokenStore, users model.UserStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, store: store, users: users, logger: logger, now: time.Now}
}

// NOTE: Keep in sync with the token manager. Used only for persistence;
// validity is checked against the JWT claims at parse time.
const (
	refreshTTL = 30 * 24 * time.Hour
)

// Issue starts a new session for principal.
func (s *TokenService) Issue(ctx context.Context, principal model.Principal) (model.Session, error) {
	userID, err := uuid.Parse(principal.ID)
	if err != nil {
		return model.Session{}, fmt.Errorf("invalid principal id: %w", err)
	}

	access, err := s.manager.GenerateAccessToken(principal)
	if err != nil {
		return model.Session{}, fmt.Errorf("issue access: %w", err)
	}

	refresh, jti, err := s.manager.GenerateRefreshToken(userID)
	if err != nil {
		return model.Session{}, fmt.Errorf("issue refresh: %w", err)
	}

	if err := s.store.Create(ctx, s.newRecord(userID, refresh, jti, nil)); err != nil {
		return model.Session{}, fmt.Errorf("persist refresh: %w", err)
	}

	return model.Session{AccessToken: access, RefreshToken: refresh, Principal: principal}, nil
}

// Refresh exchanges a refresh token for a new session. The presented token
// is revoked; presenting it again fails.
func (s *TokenService) Refresh(ctx context.Context, presentedRefresh string) (model.Session, error) {
	const op = "refresh session"

	userID, jti, err := s.manager.ParseRefreshToken(presentedRefresh)
	if err != nil {
		return model.Session{}, model.NewError(model.KindAuth, op, err)
	}

	rt, err := s.store.GetByJTI(ctx, jti)
	if errors.Is(err, model.ErrNotFound) {
		return model.Session{}, model.NewError(model.KindAuth, op, model.ErrTokenMismatch)
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("get refresh: %w", err)
	}

	if err := validateRecord(rt, hashRefresh(presentedRefresh), s.now()); err != nil {
		return model.Session{}, model.NewError(model.KindAuth, op, err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Session{}, model.NewError(model.KindAuth, op, model.ErrInvalidCredentials)
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("get user: %w", err)
	}
	principal := user.Principal()

	access, err := s.manager.GenerateAccessToken(principal)
	if err != nil {
		return model.Session{}, fmt.Errorf("issue new access: %w", err)
	}

	refresh, newJTI, err := s.manager.GenerateRefreshToken(userID)
	if err != nil {
		return model.Session{}, fmt.Errorf("issue new refresh: %w", err)
	}

	rotatedFrom := rt.JTI
	if err := s.store.Rotate(ctx, rt.JTI, s.newRecord(userID, refresh, newJTI, &rotatedFrom)); err != nil {
		if errors.Is(err, model.ErrTokenRevoked) {
			return model.Session{}, model.NewError(model.KindAuth, op, err)
		}
		return model.Session{}, fmt.Errorf("rotate refresh: %w", err)
	}

	s.logger.Debug("TokenService: session refreshed", "user_id", userID)

	return model.Session{AccessToken: access, RefreshToken: refresh, Principal: principal}, nil
}

func (s *TokenService) RevokeByToken(ctx context.Context, presentedRefresh string) error {
	_, jti, err := s.manager.ParseRefreshToken(presentedRefresh)
	if err != nil {
		return model.NewError(model.KindAuth, "revoke session", err)
	}
	return s.store.RevokeByJTI(ctx, jti)
}

func (s *TokenService) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return s.store.RevokeAllByUser(ctx, userID)
}

// GetPrincipal returns the principal carried by an access token.
func (s *TokenService) GetPrincipal(_ context.Context, token string) (model.Principal, error) {
	return s.manager.ParseAccessToken(token)
}

func (s *TokenService) newRecord(userID uuid.UUID, refresh, jti string, rotatedFrom *string) model.RefreshToken {
	now := s.now()
	return model.RefreshToken{
		ID:             uuid.New(),
		JTI:            jti,
		UserID:         userID,
		TokenHash:      hashRefresh(refresh),
		IssuedAt:       now,
		ExpiresAt:      now.Add(refreshTTL),
		RotatedFromJTI: rotatedFrom,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func hashRefresh(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}

func validateRecord(rt model.RefreshToken, presentedHash []byte, now time.Time) error {
	if rt.RevokedAt != nil {
		return model.ErrTokenRevoked
	}
	if now.After(rt.ExpiresAt) {
		return model.ErrTokenExpired
	}
	if subtle.ConstantTimeCompare(rt.TokenHash, presentedHash) != 1 {
		return model.ErrTokenMismatch
	}
	return nil
}
