package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/gophfeed/internal/model"
)

func TestNewDocumentRepository(t *testing.T) {
	db := &Connection{}
	repo := NewDocumentRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestListQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    model.Query
		contains []string
		args     []any
	}{
		{
			name:     "ordered by field descending",
			query:    model.Query{OrderBy: "createdAt", Descending: true},
			contains: []string{"(data->>$2::text)::timestamptz DESC NULLS LAST", "inserted_at DESC"},
			args:     []any{"tweets", "createdAt"},
		},
		{
			name:     "ordered by field ascending",
			query:    model.Query{OrderBy: "createdAt"},
			contains: []string{"(data->>$2::text)::timestamptz ASC NULLS LAST", "inserted_at ASC"},
			args:     []any{"tweets", "createdAt"},
		},
		{
			name:     "insertion order",
			query:    model.Query{Descending: true},
			contains: []string{"ORDER BY inserted_at DESC"},
			args:     []any{"tweets"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := listQuery("tweets", tt.query)
			for _, s := range tt.contains {
				assert.Contains(t, query, s)
			}
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestParseID(t *testing.T) {
	id := uuid.New()

	got, ok := parseID(id.String())
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = parseID("not-a-uuid")
	assert.False(t, ok)
}
