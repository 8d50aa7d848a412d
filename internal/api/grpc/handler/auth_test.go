package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	apiProto "github.com/dtroode/gophfeed/api/proto"
	"github.com/dtroode/gophfeed/internal/model"
	"github.com/dtroode/gophfeed/internal/testutil"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignUp(ctx context.Context, email, password, displayName string) (model.Session, error) {
	args := m.Called(ctx, email, password, displayName)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (model.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (model.Session, error) {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *MockAuthService) SignOut(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

var testSession = model.Session{
	AccessToken:  "access",
	RefreshToken: "refresh",
	Principal:    model.Principal{ID: "u1", DisplayName: "Ada"},
}

func TestAuth_SignUp(t *testing.T) {
	ctx := context.Background()
	svc := &MockAuthService{}
	svc.On("SignUp", ctx, "a@b.c", "secret1", "Ada").Return(testSession, nil).Once()
	svc.On("SignUp", ctx, "a@b.c", "secret1", "").Return(model.Session{}, model.NewError(model.KindValidation, "sign up", model.ErrEmailTaken)).Once()

	h := NewAuth(svc, testutil.MakeNoopLogger())

	resp, err := h.SignUp(ctx, &apiProto.SignUpRequest{Email: "a@b.c", Password: "secret1", DisplayName: "Ada"})
	require.NoError(t, err)
	want := &apiProto.Session{AccessToken: "access", RefreshToken: "refresh", User: &apiProto.Principal{Id: "u1", DisplayName: "Ada"}}
	assert.True(t, proto.Equal(want, resp), "got %v", resp)

	_, err = h.SignUp(ctx, &apiProto.SignUpRequest{Email: "a@b.c", Password: "secret1"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestAuth_SignIn(t *testing.T) {
	ctx := context.Background()
	svc := &MockAuthService{}
	svc.On("SignIn", ctx, "a@b.c", "secret1").Return(testSession, nil).Once()
	svc.On("SignIn", ctx, "a@b.c", "nope").Return(model.Session{}, model.NewError(model.KindAuth, "sign in", model.ErrInvalidCredentials)).Once()

	h := NewAuth(svc, testutil.MakeNoopLogger())

	resp, err := h.SignIn(ctx, &apiProto.SignInRequest{Email: "a@b.c", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "access", resp.AccessToken)

	_, err = h.SignIn(ctx, &apiProto.SignInRequest{Email: "a@b.c", Password: "nope"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuth_RefreshAndSignOut(t *testing.T) {
	ctx := context.Background()
	svc := &MockAuthService{}
	svc.On("Refresh", ctx, "refresh").Return(testSession, nil).Once()
	svc.On("Refresh", ctx, "stale").Return(model.Session{}, model.NewError(model.KindAuth, "refresh session", model.ErrTokenRevoked)).Once()
	svc.On("SignOut", ctx, "refresh").Return(nil).Once()

	h := NewAuth(svc, testutil.MakeNoopLogger())

	resp, err := h.Refresh(ctx, &apiProto.RefreshRequest{RefreshToken: "refresh"})
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.GetUser().GetId())

	_, err = h.Refresh(ctx, &apiProto.RefreshRequest{RefreshToken: "stale"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = h.SignOut(ctx, &apiProto.SignOutRequest{RefreshToken: "refresh"})
	require.NoError(t, err)
	svc.AssertExpectations(t)
}
