package minio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/policy"
	"github.com/minio/minio-go/v7/pkg/set"

	"github.com/dtroode/gophfeed/internal/model"
)

// Internal adapter interface to enable mocking without a real MinIO server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	SetBucketPolicy(ctx context.Context, bucketName, policy string) error
	EndpointURL() *url.URL
}

var (
	_ minioAPI        = (*minio.Client)(nil)
	_ model.BlobStore = (*Client)(nil)
)

// Options tune how attachment URLs are produced.
type Options struct {
	// PublicBaseURL, when set, replaces the endpoint and bucket as the
	// prefix of object keys, e.g. for a CDN in front of the bucket.
	PublicBaseURL string
}

type Client struct {
	api     minioAPI
	bucket  string
	options Options
}

// NewClient creates a new MinIO blob store using a real *minio.Client instance.
func NewClient(ctx context.Context, client *minio.Client, bucket string, opts Options) (*Client, error) {
	return NewClientWithAPI(ctx, client, bucket, opts)
}

// NewClientWithAPI allows injecting a mockable API (used in tests).
func NewClientWithAPI(ctx context.Context, api minioAPI, bucket string, opts Options) (*Client, error) {
	c := &Client{
		api:     api,
		bucket:  bucket,
		options: opts,
	}

	if err := c.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return c, nil
}

func (c *Client) ensureBucketExists(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	doc, err := attachmentReadPolicy(c.bucket)
	if err != nil {
		return err
	}
	if err := c.api.SetBucketPolicy(ctx, c.bucket, doc); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	return nil
}

// attachmentReadPolicy allows anonymous reads of attachment objects only.
// Listing the bucket and access outside the attachment prefix stay private.
func attachmentReadPolicy(bucket string) (string, error) {
	doc := policy.BucketAccessPolicy{
		Version: "2012-10-17",
		Statements: []policy.Statement{{
			Effect:    "Allow",
			Principal: policy.User{AWS: set.CreateStringSet("*")},
			Actions:   set.CreateStringSet("s3:GetObject"),
			Resources: set.CreateStringSet("arn:aws:s3:::" + bucket + "/" + model.PostCollection + "/*"),
		}},
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode bucket policy: %w", err)
	}
	return string(raw), nil
}

// Upload stores size bytes from reader under key.
func (c *Client) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (model.BlobHandle, error) {
	info, err := c.api.PutObject(ctx, c.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return model.BlobHandle{}, fmt.Errorf("failed to upload object: %w", err)
	}

	return model.BlobHandle{
		Key:  key,
		ETag: info.ETag,
		Size: info.Size,
	}, nil
}

// URL returns a durable location for the uploaded object. The link does
// not expire; objects under the attachment prefix are publicly readable.
func (c *Client) URL(_ context.Context, handle model.BlobHandle) (string, error) {
	if handle.Key == "" {
		return "", fmt.Errorf("blob handle has no key")
	}

	if c.options.PublicBaseURL != "" {
		return strings.TrimRight(c.options.PublicBaseURL, "/") + "/" + handle.Key, nil
	}

	endpoint := c.api.EndpointURL()
	if endpoint == nil || endpoint.Host == "" {
		return "", fmt.Errorf("storage endpoint is unknown")
	}
	return endpoint.JoinPath(c.bucket, handle.Key).String(), nil
}

// Delete removes the object stored under key.
func (c *Client) Delete(ctx context.Context, key string) error {
	err := c.api.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
