package service

import (
	"context"
	"fmt"

	"github.com/dtroode/gophfeed/internal/logger"
	"github.com/dtroode/gophfeed/internal/model"
)

// FeedReader fetches the ordered set of posts.
type FeedReader struct {
	docs   model.DocumentStore
	logger *logger.Logger
}

func NewFeedReader(docs model.DocumentStore, logger *logger.Logger) *FeedReader {
	return &FeedReader{
		docs:   docs,
		logger: logger,
	}
}

// ListPosts returns every post, most recent first. Each call performs a full
// fetch. Documents that do not decode into a post are skipped.
func (r *FeedReader) ListPosts(ctx context.Context) ([]model.Post, error) {
	docs, err := r.docs.List(ctx, model.PostCollection, model.Query{
		OrderBy:    fieldCreatedAt,
		Descending: true,
	})
	if err != nil {
		r.logger.Error("FeedReader: failed to list posts", "error", err)
		if isNetworkError(err) {
			return nil, model.NewError(model.KindNetwork, "list posts", err)
		}
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]model.Post, 0, len(docs))
	for _, doc := range docs {
		post, err := decodePost(doc)
		if err != nil {
			r.logger.Warn("FeedReader: skipping malformed post document",
				"post_id", doc.ID,
				"error", err)
			continue
		}
		posts = append(posts, post)
	}

	r.logger.Debug("FeedReader: listed posts", "count", len(posts))

	return posts, nil
}

// GetPost returns the post with the given id or model.ErrNotFound.
func (r *FeedReader) GetPost(ctx context.Context, id string) (model.Post, error) {
	doc, err := r.docs.Get(ctx, model.PostCollection, id)
	if err != nil {
		if isNetworkError(err) {
			return model.Post{}, model.NewError(model.KindNetwork, "get post", err)
		}
		return model.Post{}, fmt.Errorf("failed to get post: %w", err)
	}

	post, err := decodePost(doc)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to decode post %s: %w", id, err)
	}
	return post, nil
}

// GetPostRef loads a post for deletion. Unlike GetPost it accepts documents
// that would be skipped by ListPosts, as long as they name their author.
func (r *FeedReader) GetPostRef(ctx context.Context, id string) (model.Post, error) {
	doc, err := r.docs.Get(ctx, model.PostCollection, id)
	if err != nil {
		if isNetworkError(err) {
			return model.Post{}, model.NewError(model.KindNetwork, "get post", err)
		}
		return model.Post{}, fmt.Errorf("failed to get post: %w", err)
	}

	post, err := decodePostRef(doc)
	if err != nil {
		r.logger.Warn("FeedReader: post has no author",
			"post_id", id,
			"error", err)
		return model.Post{}, fmt.Errorf("failed to decode post %s: %w", id, err)
	}
	return post, nil
}
