package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gophfeed/internal/model"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	session := filepath.Join(t.TempDir(), "session.yaml")
	args = append([]string{"--server", "localhost:1", "--session-file", session}, args...)
	err := run(context.Background(), args, os.Stdin, &stdout, &stderr)
	return stdout.String(), err
}

func TestRun_RequiresIdentity(t *testing.T) {
	for _, command := range [][]string{{"whoami"}, {"post", "hello"}, {"delete", "p1"}} {
		t.Run(command[0], func(t *testing.T) {
			out, err := runCLI(t, command...)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrLoginRequired)
			assert.Equal(t, "login required", describe(err))
			assert.Empty(t, out)
		})
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	_, err := runCLI(t, "frobnicate")
	assert.Equal(t, model.KindValidation, model.KindOf(err))
	assert.Contains(t, describe(err), "unknown command")
}

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer

	opts, rest, err := parseFlags([]string{"post", "hello", "world", "--image", "cat.png", "--tls"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, []string{"post", "hello", "world"}, rest)
	assert.Equal(t, "cat.png", opts.image)
	assert.True(t, opts.tls)
	assert.Equal(t, "localhost:50051", opts.server)

	_, _, err = parseFlags(nil, &stderr)
	assert.Error(t, err)
	assert.Contains(t, stderr.String(), "Usage: feedctl")
}

func TestRenderFeed(t *testing.T) {
	var buf bytes.Buffer
	renderFeed(&buf, nil)
	assert.Equal(t, "No posts yet.\n", buf.String())

	buf.Reset()
	renderFeed(&buf, []model.Post{
		{ID: "p2", Body: "second", AuthorDisplayName: "Ada", CreatedAt: time.Now().Add(-2 * time.Hour), AttachmentRef: "https://cdn/p2"},
		{ID: "p1", Body: "first", CreatedAt: time.Now().Add(-48 * time.Hour)},
	})
	out := buf.String()
	assert.Contains(t, out, "Ada, 2 hours ago [p2]\n  second\n  photo: https://cdn/p2\n")
	assert.Contains(t, out, "Anonymous, 2 days ago [p1]\n  first\n")
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{model.NewError(model.KindAuth, "sign in", model.ErrInvalidCredentials), "wrong email or password"},
		{model.Errorf(model.KindAuth, "delete post", "not yours"), "not allowed"},
		{model.Errorf(model.KindValidation, "create post", "post body is required"), "post body is required"},
		{model.Errorf(model.KindStoreWrite, "create post", "boom"), "could not save the post"},
		{model.Errorf(model.KindBlobUpload, "create post", "boom"), "could not upload the image"},
		{model.NewError(model.KindNetwork, "list posts", context.DeadlineExceeded), "server unavailable, try again later"},
		{model.NewError(model.KindAuth, "restore", model.ErrTokenExpired), "session expired, log in again"},
		{model.NewError(model.KindUnknown, "delete", model.ErrNotFound), "post not found"},
		{errors.New("plain"), "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describe(tt.err))
	}
}

func TestReadPasswordFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "pw")
	require.NoError(t, os.WriteFile(path, []byte("secret1\n"), 0o600))
	got, err := readPassword(path, os.Stdin, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "secret1", got)

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, []byte("\n"), 0o600))
	_, err = readPassword(empty, os.Stdin, &bytes.Buffer{})
	assert.Equal(t, model.KindValidation, model.KindOf(err))

	_, err = readPassword(filepath.Join(dir, "missing"), os.Stdin, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestFindPost(t *testing.T) {
	posts := []model.Post{{ID: "a"}, {ID: "b", Body: "found"}}
	p, ok := findPost(posts, "b")
	assert.True(t, ok)
	assert.Equal(t, "found", p.Body)

	_, ok = findPost(posts, "c")
	assert.False(t, ok)
}
