package service

import (
	"context"
	"fmt"

	"github.com/dtroode/gophfeed/internal/logger"
	"github.com/dtroode/gophfeed/internal/model"
)

// FeedEraser removes posts and their attachments.
type FeedEraser struct {
	docs   model.DocumentStore
	blobs  model.BlobStore
	logger *logger.Logger
}

func NewFeedEraser(docs model.DocumentStore, blobs model.BlobStore, logger *logger.Logger) *FeedEraser {
	return &FeedEraser{
		docs:   docs,
		blobs:  blobs,
		logger: logger,
	}
}

// DeletePost removes post on behalf of requester, who must be its author.
// The attachment is removed only when the post has one, and a failure to do
// so is logged, not returned.
func (e *FeedEraser) DeletePost(ctx context.Context, post model.Post, requester model.Principal) error {
	const op = "delete post"

	if requester.ID == "" || requester.ID != post.AuthorID {
		return model.NewError(model.KindAuth, op,
			fmt.Errorf("user %q is not the author of post %s", requester.ID, post.ID))
	}

	if err := e.docs.Delete(ctx, model.PostCollection, post.ID); err != nil {
		e.logger.Error("FeedEraser: failed to delete post",
			"post_id", post.ID,
			"author_id", post.AuthorID,
			"error", err)
		return classify(model.KindStoreWrite, op, err)
	}

	if post.HasAttachment() {
		if err := e.blobs.Delete(ctx, post.AttachmentKey()); err != nil {
			e.logger.Warn("FeedEraser: attachment left behind",
				"post_id", post.ID,
				"key", post.AttachmentKey(),
				"error", model.NewError(model.KindBlobDelete, op, err))
		}
	}

	e.logger.Info("FeedEraser: post deleted",
		"post_id", post.ID,
		"author_id", post.AuthorID)

	return nil
}
