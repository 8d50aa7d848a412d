package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/gophfeed/internal/model"
)

var (
	_ model.TokenManager      = (*TokenManager)(nil)
	_ model.PrincipalResolver = (*PrincipalResolver)(nil)
)

// TokenManager mocks model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) GenerateAccessToken(principal model.Principal) (string, error) {
	args := m.Called(principal)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) GenerateRefreshToken(userID uuid.UUID) (string, string, error) {
	args := m.Called(userID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *TokenManager) ParseAccessToken(token string) (model.Principal, error) {
	args := m.Called(token)
	return args.Get(0).(model.Principal), args.Error(1)
}

func (m *TokenManager) ParseRefreshToken(token string) (uuid.UUID, string, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.String(1), args.Error(2)
}

// PrincipalResolver is a fixed model.PrincipalResolver.
type PrincipalResolver struct {
	Current model.Principal
	OK      bool
}

// Signed returns a resolver that always yields principal.
func Signed(principal model.Principal) PrincipalResolver {
	return PrincipalResolver{Current: principal, OK: true}
}

func (r PrincipalResolver) Principal(_ context.Context) (model.Principal, bool) {
	return r.Current, r.OK
}
