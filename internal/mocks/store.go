// Package mocks contains testify mocks of the model interfaces.
package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/gophfeed/internal/model"
)

var (
	_ model.DocumentStore     = (*DocumentStore)(nil)
	_ model.BlobStore         = (*BlobStore)(nil)
	_ model.UserStore         = (*UserStore)(nil)
	_ model.RefreshTokenStore = (*RefreshTokenStore)(nil)
)

// DocumentStore mocks model.DocumentStore.
type DocumentStore struct {
	mock.Mock
}

func (m *DocumentStore) Add(ctx context.Context, collection string, fields model.Fields) (model.Document, error) {
	args := m.Called(ctx, collection, fields)
	return args.Get(0).(model.Document), args.Error(1)
}

func (m *DocumentStore) Update(ctx context.Context, collection, id string, patch model.Fields) error {
	args := m.Called(ctx, collection, id, patch)
	return args.Error(0)
}

func (m *DocumentStore) Get(ctx context.Context, collection, id string) (model.Document, error) {
	args := m.Called(ctx, collection, id)
	return args.Get(0).(model.Document), args.Error(1)
}

func (m *DocumentStore) List(ctx context.Context, collection string, query model.Query) ([]model.Document, error) {
	args := m.Called(ctx, collection, query)
	docs, _ := args.Get(0).([]model.Document)
	return docs, args.Error(1)
}

func (m *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}

// BlobStore mocks model.BlobStore.
type BlobStore struct {
	mock.Mock
}

func (m *BlobStore) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (model.BlobHandle, error) {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.Get(0).(model.BlobHandle), args.Error(1)
}

func (m *BlobStore) URL(ctx context.Context, handle model.BlobHandle) (string, error) {
	args := m.Called(ctx, handle)
	return args.String(0), args.Error(1)
}

func (m *BlobStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// UserStore mocks model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	if fn, ok := args.Get(0).(func(context.Context, model.User) model.User); ok {
		return fn(ctx, user), args.Error(1)
	}
	return args.Get(0).(model.User), args.Error(1)
}

// RefreshTokenStore mocks model.RefreshTokenStore.
type RefreshTokenStore struct {
	mock.Mock
}

func (m *RefreshTokenStore) Create(ctx context.Context, token model.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *RefreshTokenStore) GetByJTI(ctx context.Context, jti string) (model.RefreshToken, error) {
	args := m.Called(ctx, jti)
	return args.Get(0).(model.RefreshToken), args.Error(1)
}

func (m *RefreshTokenStore) Rotate(ctx context.Context, oldJTI string, next model.RefreshToken) error {
	args := m.Called(ctx, oldJTI, next)
	return args.Error(0)
}

func (m *RefreshTokenStore) RevokeByJTI(ctx context.Context, jti string) error {
	args := m.Called(ctx, jti)
	return args.Error(0)
}

func (m *RefreshTokenStore) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
