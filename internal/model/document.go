package model

import (
	"context"
	"time"
)

// Fields is the untyped field data of a stored document.
type Fields map[string]any

// Document is a raw record of the document store.
type Document struct {
	ID        string
	Fields    Fields
	CreatedAt time.Time
}

// Query describes how a collection listing is ordered. OrderBy names a
// timestamp field of the documents.
type Query struct {
	OrderBy    string
	Descending bool
}

// DocumentStore is keyed record storage with query and sort.
type DocumentStore interface {
	// Add persists a new document and returns it with its store-assigned ID.
	Add(ctx context.Context, collection string, fields Fields) (Document, error)
	// Update merges patch into the fields of an existing document.
	Update(ctx context.Context, collection, id string, patch Fields) error
	Get(ctx context.Context, collection, id string) (Document, error)
	List(ctx context.Context, collection string, query Query) ([]Document, error)
	Delete(ctx context.Context, collection, id string) error
}
