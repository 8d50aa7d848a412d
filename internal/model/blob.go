package model

import (
	"context"
	"io"
)

// BlobHandle identifies an uploaded object.
type BlobHandle struct {
	Key  string
	ETag string
	Size int64
}

// BlobStore is path-addressed binary storage with URL retrieval.
type BlobStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (BlobHandle, error)
	URL(ctx context.Context, handle BlobHandle) (string, error)
	Delete(ctx context.Context, key string) error
}
