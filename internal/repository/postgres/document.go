package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/gophfeed/internal/model"
)

var _ model.DocumentStore = (*DocumentRepository)(nil)

// DocumentRepository stores documents as JSONB rows keyed by collection and
// a database-assigned UUID.
type DocumentRepository struct {
	db *Connection
}

func NewDocumentRepository(db *Connection) *DocumentRepository {
	return &DocumentRepository{
		db: db,
	}
}

func (r *DocumentRepository) Add(ctx context.Context, collection string, fields model.Fields) (model.Document, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to encode document: %w", err)
	}

	const query = `
		INSERT INTO documents (collection, data)
		VALUES ($1, $2::jsonb)
		RETURNING id, data, inserted_at`

	doc, err := scanDocument(r.db.QueryRow(ctx, query, collection, data))
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to insert document: %w", err)
	}

	return doc, nil
}

func (r *DocumentRepository) Update(ctx context.Context, collection, id string, patch model.Fields) error {
	docID, ok := parseID(id)
	if !ok {
		return model.ErrNotFound
	}

	data, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("failed to encode patch: %w", err)
	}

	const query = `
		UPDATE documents SET data = data || $3::jsonb, updated_at = NOW()
		WHERE collection = $1 AND id = $2`

	cmd, err := r.db.Exec(ctx, query, collection, docID, data)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *DocumentRepository) Get(ctx context.Context, collection, id string) (model.Document, error) {
	docID, ok := parseID(id)
	if !ok {
		return model.Document{}, model.ErrNotFound
	}

	const query = `
		SELECT id, data, inserted_at
		FROM documents
		WHERE collection = $1 AND id = $2`

	doc, err := scanDocument(r.db.QueryRow(ctx, query, collection, docID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Document{}, model.ErrNotFound
		}
		return model.Document{}, fmt.Errorf("failed to get document: %w", err)
	}

	return doc, nil
}

func (r *DocumentRepository) List(ctx context.Context, collection string, q model.Query) ([]model.Document, error) {
	query, args := listQuery(collection, q)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	docs := []model.Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return docs, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, collection, id string) error {
	docID, ok := parseID(id)
	if !ok {
		return model.ErrNotFound
	}

	const query = `DELETE FROM documents WHERE collection = $1 AND id = $2`
	cmd, err := r.db.Exec(ctx, query, collection, docID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// listQuery builds the listing statement. The order field is bound as a
// parameter and read as a timestamp; ties fall back to insertion order.
func listQuery(collection string, q model.Query) (string, []any) {
	dir := "ASC"
	if q.Descending {
		dir = "DESC"
	}

	if q.OrderBy == "" {
		return fmt.Sprintf(`
		SELECT id, data, inserted_at
		FROM documents
		WHERE collection = $1
		ORDER BY inserted_at %s, id`, dir), []any{collection}
	}

	return fmt.Sprintf(`
		SELECT id, data, inserted_at
		FROM documents
		WHERE collection = $1
		ORDER BY (data->>$2::text)::timestamptz %[1]s NULLS LAST, inserted_at %[1]s, id`, dir), []any{collection, q.OrderBy}
}

func scanDocument(row pgx.Row) (model.Document, error) {
	var (
		id         uuid.UUID
		raw        []byte
		insertedAt time.Time
	)
	if err := row.Scan(&id, &raw, &insertedAt); err != nil {
		return model.Document{}, err
	}

	fields := model.Fields{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return model.Document{}, fmt.Errorf("failed to decode document %s: %w", id, err)
	}

	return model.Document{
		ID:        id.String(),
		Fields:    fields,
		CreatedAt: insertedAt,
	}, nil
}

// parseID reports ok=false for IDs the store could never have assigned.
func parseID(id string) (uuid.UUID, bool) {
	docID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, false
	}
	return docID, true
}
