package model

import (
	"context"

	"github.com/google/uuid"
)

// AnonymousName is the author name used when a principal has no display name.
const AnonymousName = "Anonymous"

// Principal is the authenticated caller.
type Principal struct {
	ID          string
	DisplayName string
}

// AuthorName returns the display name or AnonymousName when it is absent.
func (p Principal) AuthorName() string {
	if p.DisplayName == "" {
		return AnonymousName
	}
	return p.DisplayName
}

// ContextManager carries the acting principal through a request context.
type ContextManager interface {
	SetPrincipalToContext(ctx context.Context, principal Principal) context.Context
	GetPrincipalFromContext(ctx context.Context) (Principal, bool)
}

// PrincipalResolver returns the principal acting in ctx, if any.
type PrincipalResolver interface {
	Principal(ctx context.Context) (Principal, bool)
}

// TokenManager generates and validates access/refresh tokens.
type TokenManager interface {
	GenerateAccessToken(principal Principal) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (token string, jti string, err error)
	ParseAccessToken(token string) (Principal, error)
	ParseRefreshToken(token string) (userID uuid.UUID, jti string, err error)
}

// Session is a signed-in session issued by the identity provider.
type Session struct {
	AccessToken  string
	RefreshToken string
	Principal    Principal
}
