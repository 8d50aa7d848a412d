package minio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gophfeed/internal/model"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      string

	putInfo        minioLib.UploadInfo
	putErr         error
	putKey         string
	putSize        int64
	putContentType string
	putData        []byte

	policy    string
	policyErr error
	endpoint  *url.URL

	removeErr error
	removed   string
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}
func (f *fakeMinio) MakeBucket(_ context.Context, bucket string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = bucket
	return f.makeBucketErr
}
func (f *fakeMinio) PutObject(_ context.Context, _ string, key string, r io.Reader, size int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	f.putKey = key
	f.putSize = size
	f.putContentType = opts.ContentType
	f.putData, _ = io.ReadAll(r)
	return f.putInfo, f.putErr
}
func (f *fakeMinio) SetBucketPolicy(_ context.Context, _ string, doc string) error {
	f.policy = doc
	return f.policyErr
}
func (f *fakeMinio) EndpointURL() *url.URL {
	return f.endpoint
}
func (f *fakeMinio) RemoveObject(_ context.Context, _ string, key string, _ minioLib.RemoveObjectOptions) error {
	f.removed = key
	return f.removeErr
}

func TestNewClientWithAPI(t *testing.T) {
	ctx := context.Background()

	t.Run("bucket exists", func(t *testing.T) {
		api := &fakeMinio{bucketExists: true}
		c, err := NewClientWithAPI(ctx, api, "b", Options{})
		require.NoError(t, err)
		assert.Equal(t, "b", c.bucket)
		assert.Empty(t, api.madeBucket)
	})

	t.Run("creates bucket", func(t *testing.T) {
		api := &fakeMinio{}
		_, err := NewClientWithAPI(ctx, api, "bucket", Options{})
		require.NoError(t, err)
		assert.Equal(t, "bucket", api.madeBucket)
	})

	t.Run("exists error", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeMinio{bucketExistsErr: errors.New("boom")}, "bucket", Options{})
		assert.Nil(t, c)
		assert.ErrorContains(t, err, "failed to ensure bucket exists")
	})

	t.Run("make bucket error", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeMinio{makeBucketErr: errors.New("fail")}, "bucket", Options{})
		assert.Nil(t, c)
		assert.ErrorContains(t, err, "failed to create bucket")
	})

	t.Run("policy error", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeMinio{bucketExists: true, policyErr: errors.New("denied")}, "bucket", Options{})
		assert.Nil(t, c)
		assert.ErrorContains(t, err, "failed to set bucket policy")
	})
}

func TestNewClientWithAPI_AttachmentsReadable(t *testing.T) {
	api := &fakeMinio{bucketExists: true}
	_, err := NewClientWithAPI(context.Background(), api, "feed", Options{})
	require.NoError(t, err)

	var doc policy.BucketAccessPolicy
	require.NoError(t, json.Unmarshal([]byte(api.policy), &doc))
	require.Len(t, doc.Statements, 1)

	st := doc.Statements[0]
	assert.Equal(t, "Allow", st.Effect)
	assert.True(t, st.Principal.AWS.Contains("*"))
	assert.Equal(t, []string{"s3:GetObject"}, st.Actions.ToSlice())
	assert.Equal(t, []string{"arn:aws:s3:::feed/tweets/*"}, st.Resources.ToSlice())
}

func TestClient_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{putInfo: minioLib.UploadInfo{ETag: "etag", Size: 4}}
		c := &Client{api: api, bucket: "b"}

		handle, err := c.Upload(ctx, "tweets/u/p", bytes.NewReader([]byte("data")), 4, "image/png")
		require.NoError(t, err)
		assert.Equal(t, model.BlobHandle{Key: "tweets/u/p", ETag: "etag", Size: 4}, handle)
		assert.Equal(t, "image/png", api.putContentType)
		assert.Equal(t, int64(4), api.putSize)
		assert.Equal(t, []byte("data"), api.putData)
	})

	t.Run("error", func(t *testing.T) {
		c := &Client{api: &fakeMinio{putErr: errors.New("put-fail")}, bucket: "b"}
		_, err := c.Upload(ctx, "k", bytes.NewReader([]byte("data")), 4, "image/png")
		assert.ErrorContains(t, err, "failed to upload object")
	})
}

func TestClient_URL(t *testing.T) {
	ctx := context.Background()

	t.Run("public base", func(t *testing.T) {
		api := &fakeMinio{}
		c := &Client{api: api, bucket: "b", options: Options{PublicBaseURL: "https://cdn.example.com/b/"}}
		u, err := c.URL(ctx, model.BlobHandle{Key: "tweets/u/p"})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/b/tweets/u/p", u)
	})

	t.Run("endpoint by default", func(t *testing.T) {
		endpoint, _ := url.Parse("http://localhost:9000")
		c := &Client{api: &fakeMinio{endpoint: endpoint}, bucket: "b"}
		raw, err := c.URL(ctx, model.BlobHandle{Key: "tweets/u/p"})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/b/tweets/u/p", raw)

		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Empty(t, u.RawQuery)
		assert.NotContains(t, raw, "X-Amz-Expires")
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		c := &Client{api: &fakeMinio{}, bucket: "b"}
		_, err := c.URL(ctx, model.BlobHandle{Key: "k"})
		assert.ErrorContains(t, err, "storage endpoint is unknown")
	})

	t.Run("empty key", func(t *testing.T) {
		c := &Client{api: &fakeMinio{}, bucket: "b"}
		_, err := c.URL(ctx, model.BlobHandle{})
		assert.Error(t, err)
	})
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{}
		c := &Client{api: api, bucket: "b"}
		require.NoError(t, c.Delete(ctx, "tweets/u/p"))
		assert.Equal(t, "tweets/u/p", api.removed)
	})

	t.Run("error", func(t *testing.T) {
		c := &Client{api: &fakeMinio{removeErr: errors.New("remove-fail")}, bucket: "b"}
		assert.ErrorContains(t, c.Delete(ctx, "k"), "failed to delete object")
	})
}
