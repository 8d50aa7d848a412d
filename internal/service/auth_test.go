package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	servermocks "github.com/dtroode/gophfeed/internal/mocks"
	"github.com/dtroode/gophfeed/internal/model"
	"github.com/dtroode/gophfeed/internal/testutil"
)

func newTestAuth(users *servermocks.UserStore, store *servermocks.RefreshTokenStore, manager *servermocks.TokenManager) *Auth {
	a := NewAuth(users, store, testutil.MakeNoopLogger(), manager)
	a.hashCost = bcrypt.MinCost
	return a
}

func TestAuth_SignUp(t *testing.T) {
	ctx := context.Background()
	users := &servermocks.UserStore{}
	store := &servermocks.RefreshTokenStore{}
	manager := &servermocks.TokenManager{}

	var created model.User
	users.On("Create", ctx, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "ada@example.com" && u.DisplayName == "Ada" &&
			bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("secret1")) == nil
	})).Run(func(args mock.Arguments) {
		created = args.Get(1).(model.User)
	}).Return(func(_ context.Context, u model.User) model.User { return u }, nil).Once()
	manager.On("GenerateAccessToken", mock.Anything).Return("access", nil).Once()
	manager.On("GenerateRefreshToken", mock.Anything).Return("refresh", "jti", nil).Once()
	store.On("Create", ctx, mock.Anything).Return(nil).Once()

	session, err := newTestAuth(users, store, manager).SignUp(ctx, "  Ada@Example.com ", "secret1", " Ada ")
	require.NoError(t, err)
	assert.Equal(t, "access", session.AccessToken)
	assert.Equal(t, "refresh", session.RefreshToken)
	assert.Equal(t, created.ID.String(), session.Principal.ID)
	assert.Equal(t, "Ada", session.Principal.DisplayName)
}

func TestAuth_SignUp_Rejected(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(*servermocks.UserStore)
		wantErr  error
	}{
		{name: "empty email", email: "", password: "secret1"},
		{name: "invalid email", email: "not an email", password: "secret1"},
		{name: "short password", email: "a@b.c", password: "12345"},
		{
			name:     "email taken",
			email:    "a@b.c",
			password: "secret1",
			setup: func(users *servermocks.UserStore) {
				users.On("Create", ctx, mock.Anything).Return(model.User{}, model.ErrEmailTaken).Once()
			},
			wantErr: model.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &servermocks.UserStore{}
			if tt.setup != nil {
				tt.setup(users)
			}

			_, err := newTestAuth(users, &servermocks.RefreshTokenStore{}, &servermocks.TokenManager{}).
				SignUp(ctx, tt.email, tt.password, "")
			require.Error(t, err)
			assert.Equal(t, model.KindValidation, model.KindOf(err))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAuth_SignIn(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	user := model.User{ID: uuid.New(), Email: "a@b.c", DisplayName: "Ada", PasswordHash: hash}

	t.Run("success", func(t *testing.T) {
		users := &servermocks.UserStore{}
		store := &servermocks.RefreshTokenStore{}
		manager := &servermocks.TokenManager{}
		users.On("GetByEmail", ctx, "a@b.c").Return(user, nil).Once()
		manager.On("GenerateAccessToken", user.Principal()).Return("access", nil).Once()
		manager.On("GenerateRefreshToken", user.ID).Return("refresh", "jti", nil).Once()
		store.On("Create", ctx, mock.Anything).Return(nil).Once()

		session, err := newTestAuth(users, store, manager).SignIn(ctx, "A@B.C", "secret1")
		require.NoError(t, err)
		assert.Equal(t, user.Principal(), session.Principal)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := &servermocks.UserStore{}
		users.On("GetByEmail", ctx, "a@b.c").Return(user, nil).Once()

		_, err := newTestAuth(users, &servermocks.RefreshTokenStore{}, &servermocks.TokenManager{}).SignIn(ctx, "a@b.c", "wrong!")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
		assert.Equal(t, model.KindAuth, model.KindOf(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		users := &servermocks.UserStore{}
		users.On("GetByEmail", ctx, "x@b.c").Return(model.User{}, model.ErrNotFound).Once()

		_, err := newTestAuth(users, &servermocks.RefreshTokenStore{}, &servermocks.TokenManager{}).SignIn(ctx, "x@b.c", "secret1")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})
}

func TestAuth_SignOut(t *testing.T) {
	ctx := context.Background()
	manager := &servermocks.TokenManager{}
	store := &servermocks.RefreshTokenStore{}
	manager.On("ParseRefreshToken", "refresh").Return(uuid.New(), "jti", nil).Once()
	store.On("RevokeByJTI", ctx, "jti").Return(nil).Once()

	require.NoError(t, newTestAuth(&servermocks.UserStore{}, store, manager).SignOut(ctx, "refresh"))
	store.AssertExpectations(t)
}
