package context

import (
	"context"

	"github.com/dtroode/gophfeed/internal/model"
)

type principalKey struct{}

var (
	_ model.ContextManager    = (*Manager)(nil)
	_ model.PrincipalResolver = (*Manager)(nil)
)

// Manager carries the authenticated principal of a gRPC request in its context.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetPrincipalToContext returns a copy of ctx carrying principal.
func (m *Manager) SetPrincipalToContext(ctx context.Context, principal model.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipalFromContext returns the principal stored by SetPrincipalToContext.
func (m *Manager) GetPrincipalFromContext(ctx context.Context) (model.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(model.Principal)
	if !ok || principal.ID == "" {
		return model.Principal{}, false
	}
	return principal, true
}

// Principal resolves the acting principal of a request.
func (m *Manager) Principal(ctx context.Context) (model.Principal, bool) {
	return m.GetPrincipalFromContext(ctx)
}
