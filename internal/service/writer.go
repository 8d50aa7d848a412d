package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dtroode/gophfeed/internal/logger"
	"github.com/dtroode/gophfeed/internal/model"
)

const sniffLen = 512

// FeedWriter creates posts and links their attachments.
type FeedWriter struct {
	docs               model.DocumentStore
	blobs              model.BlobStore
	principals         model.PrincipalResolver
	logger             *logger.Logger
	maxAttachmentBytes int64
	now                func() time.Time
}

func NewFeedWriter(
	docs model.DocumentStore,
	blobs model.BlobStore,
	principals model.PrincipalResolver,
	logger *logger.Logger,
	maxAttachmentBytes int64,
) *FeedWriter {
	return &FeedWriter{
		docs:               docs,
		blobs:              blobs,
		principals:         principals,
		logger:             logger,
		maxAttachmentBytes: maxAttachmentBytes,
		now:                time.Now,
	}
}

type upload struct {
	reader      io.Reader
	size        int64
	contentType string
}

// CreatePost persists a post for the principal in ctx and, when attachment is
// not nil, uploads it and links its URL to the post.
//
// The text record is not rolled back when the attachment fails: the returned
// error is then accompanied by the persisted post without AttachmentRef.
func (w *FeedWriter) CreatePost(ctx context.Context, body string, attachment *model.Attachment) (model.Post, error) {
	const op = "create post"

	principal, ok := w.principals.Principal(ctx)
	if !ok {
		return model.Post{}, model.NewError(model.KindAuth, op, model.ErrLoginRequired)
	}

	if err := model.ValidateBody(body); err != nil {
		return model.Post{}, model.NewError(model.KindValidation, op, err)
	}

	var up *upload
	if attachment != nil {
		var err error
		up, err = w.prepareAttachment(attachment)
		if err != nil {
			return model.Post{}, model.NewError(model.KindValidation, op, err)
		}
	}

	post := model.Post{
		Body:              body,
		AuthorID:          principal.ID,
		AuthorDisplayName: principal.AuthorName(),
		CreatedAt:         w.now().UTC(),
	}

	doc, err := w.docs.Add(ctx, model.PostCollection, encodePost(post))
	if err != nil {
		w.logger.Error("FeedWriter: failed to persist post",
			"author_id", post.AuthorID,
			"error", err)
		return model.Post{}, classify(model.KindStoreWrite, op, err)
	}
	post.ID = doc.ID

	if up == nil {
		w.logger.Info("FeedWriter: post created",
			"post_id", post.ID,
			"author_id", post.AuthorID)
		return post, nil
	}

	ref, err := w.attach(ctx, post, up)
	if err != nil {
		w.logger.Error("FeedWriter: post created without attachment",
			"post_id", post.ID,
			"author_id", post.AuthorID,
			"error", err)
		return post, err
	}
	post.AttachmentRef = ref

	w.logger.Info("FeedWriter: post created",
		"post_id", post.ID,
		"author_id", post.AuthorID,
		"attachment_size", humanize.Bytes(uint64(up.size)))

	return post, nil
}

func (w *FeedWriter) attach(ctx context.Context, post model.Post, up *upload) (string, error) {
	const op = "attach image"

	handle, err := w.blobs.Upload(ctx, post.AttachmentKey(), up.reader, up.size, up.contentType)
	if err != nil {
		return "", classify(model.KindBlobUpload, op, err)
	}

	url, err := w.blobs.URL(ctx, handle)
	if err != nil {
		return "", classify(model.KindBlobUpload, op, err)
	}

	if err := w.docs.Update(ctx, model.PostCollection, post.ID, model.Fields{fieldPhoto: url}); err != nil {
		return "", classify(model.KindStoreWrite, op, err)
	}

	return url, nil
}

// prepareAttachment checks the attachment size and that it is an image. The
// content type hint is used when present, otherwise it is sniffed.
func (w *FeedWriter) prepareAttachment(a *model.Attachment) (*upload, error) {
	if a.Reader == nil {
		return nil, errors.New("attachment has no content")
	}
	if a.Size <= 0 {
		return nil, errors.New("attachment is empty")
	}
	if a.Size > w.maxAttachmentBytes {
		return nil, fmt.Errorf("attachment too large (%s > %s)",
			humanize.Bytes(uint64(a.Size)), humanize.Bytes(uint64(w.maxAttachmentBytes)))
	}

	reader := bufio.NewReaderSize(a.Reader, sniffLen)
	contentType := a.ContentType
	if contentType == "" {
		head, err := reader.Peek(sniffLen)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read attachment: %w", err)
		}
		contentType = http.DetectContentType(head)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("invalid attachment content type %q: %w", contentType, err)
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return nil, fmt.Errorf("attachment must be an image, got %s", mediaType)
	}

	return &upload{
		reader:      reader,
		size:        a.Size,
		contentType: mediaType,
	}, nil
}
