//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/gophfeed/internal/model"
	repo "github.com/dtroode/gophfeed/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "gophfeed_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/gophfeed_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func connect(t *testing.T) *repo.Connection {
	t.Helper()
	conn, err := repo.NewConnection(context.Background(), dsn, repo.PoolOptions{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(conn.Close)
	return conn
}

func TestDocumentRepository(t *testing.T) {
	ctx := context.Background()
	docs := repo.NewDocumentRepository(connect(t))
	collection := "it-" + uuid.NewString()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		doc, err := docs.Add(ctx, collection, model.Fields{
			"body":      fmt.Sprintf("post %d", i),
			"createdAt": base.Add(time.Duration(i) * time.Minute).Format(time.RFC3339Nano),
		})
		require.NoError(t, err)
		require.NotEmpty(t, doc.ID)
		ids = append(ids, doc.ID)
	}

	list, err := docs.List(ctx, collection, model.Query{OrderBy: "createdAt", Descending: true})
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, []string{ids[2], ids[1], ids[0]}, []string{list[0].ID, list[1].ID, list[2].ID})

	require.NoError(t, docs.Update(ctx, collection, ids[0], model.Fields{"photo": "http://blob/x"}))
	got, err := docs.Get(ctx, collection, ids[0])
	require.NoError(t, err)
	require.Equal(t, "http://blob/x", got.Fields["photo"])
	require.Equal(t, "post 0", got.Fields["body"])

	require.NoError(t, docs.Delete(ctx, collection, ids[1]))
	_, err = docs.Get(ctx, collection, ids[1])
	require.ErrorIs(t, err, model.ErrNotFound)
	require.ErrorIs(t, docs.Delete(ctx, collection, ids[1]), model.ErrNotFound)

	err = docs.Update(ctx, collection, uuid.NewString(), model.Fields{"photo": "x"})
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = docs.Get(ctx, collection, "not-a-uuid")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	ur := repo.NewUserRepository(connect(t))

	now := time.Now().UTC().Truncate(time.Microsecond)
	u := model.User{
		ID:           uuid.New(),
		Email:        "user-" + uuid.NewString() + "@example.com",
		DisplayName:  "Ada",
		PasswordHash: []byte("hash"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	saved, err := ur.Create(ctx, u)
	require.NoError(t, err)
	require.Equal(t, u.ID, saved.ID)

	byEmail, err := ur.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
	require.Equal(t, "Ada", byEmail.DisplayName)

	byID, err := ur.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)

	dup := u
	dup.ID = uuid.New()
	_, err = ur.Create(ctx, dup)
	require.ErrorIs(t, err, model.ErrEmailTaken)

	_, err = ur.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestRefreshTokenRepository_Rotate(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	ur := repo.NewUserRepository(conn)
	rr := repo.NewRefreshTokenRepository(conn)

	now := time.Now().UTC()
	user, err := ur.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        "rt-" + uuid.NewString() + "@example.com",
		PasswordHash: []byte("hash"),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)

	first := model.RefreshToken{
		JTI:       uuid.NewString(),
		UserID:    user.ID,
		TokenHash: []byte("h1"),
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}
	require.NoError(t, rr.Create(ctx, first))

	oldJTI := first.JTI
	second := model.RefreshToken{
		JTI:            uuid.NewString(),
		UserID:         user.ID,
		TokenHash:      []byte("h2"),
		IssuedAt:       now,
		ExpiresAt:      now.Add(time.Hour),
		RotatedFromJTI: &oldJTI,
	}
	require.NoError(t, rr.Rotate(ctx, first.JTI, second))

	old, err := rr.GetByJTI(ctx, first.JTI)
	require.NoError(t, err)
	require.NotNil(t, old.RevokedAt)

	next, err := rr.GetByJTI(ctx, second.JTI)
	require.NoError(t, err)
	require.Nil(t, next.RevokedAt)
	require.Equal(t, oldJTI, *next.RotatedFromJTI)

	replay := second
	replay.JTI = uuid.NewString()
	require.ErrorIs(t, rr.Rotate(ctx, first.JTI, replay), model.ErrTokenRevoked)
	_, err = rr.GetByJTI(ctx, replay.JTI)
	require.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, rr.RevokeAllByUser(ctx, user.ID))
	next, err = rr.GetByJTI(ctx, second.JTI)
	require.NoError(t, err)
	require.NotNil(t, next.RevokedAt)
}
