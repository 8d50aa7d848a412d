package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/gophfeed/internal/model"
)

func TestManager_SetAndGetPrincipal(t *testing.T) {
	m := NewManager()
	p := model.Principal{ID: "u1", DisplayName: "Ada"}
	ctx := m.SetPrincipalToContext(stdctx.Background(), p)

	got, ok := m.GetPrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, p, got)

	got, ok = m.Principal(ctx)
	assert.True(t, ok)
	assert.Equal(t, p, got)
}

func TestManager_GetPrincipal_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetPrincipalFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_GetPrincipal_EmptyID(t *testing.T) {
	m := NewManager()
	ctx := m.SetPrincipalToContext(stdctx.Background(), model.Principal{DisplayName: "ghost"})
	_, ok := m.Principal(ctx)
	assert.False(t, ok)
}
