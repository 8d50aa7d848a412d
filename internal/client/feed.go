package client

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	apiProto "github.com/dtroode/gophfeed/api/proto"
	"github.com/dtroode/gophfeed/internal/api/grpc/rpc"
	"github.com/dtroode/gophfeed/internal/logger"
	"github.com/dtroode/gophfeed/internal/model"
	"github.com/dtroode/gophfeed/internal/notify"
)

// FeedChanged signals that a post was created or deleted by this client.
type FeedChanged struct {
	PostID  string
	Deleted bool
}

// Feed calls the feed service and announces local changes.
type Feed struct {
	rpc     apiProto.FeedClient
	changes *notify.Broadcaster[FeedChanged]
	logger  *logger.Logger
}

func NewFeed(cc grpc.ClientConnInterface, logger *logger.Logger) *Feed {
	return &Feed{
		rpc:     apiProto.NewFeedClient(cc),
		changes: notify.NewBroadcaster[FeedChanged](1),
		logger:  logger,
	}
}

// Subscribe returns a channel of FeedChanged signals and its cancel func.
func (f *Feed) Subscribe() (<-chan FeedChanged, func()) {
	return f.changes.Subscribe()
}

// ListPosts returns the feed, most recent first.
func (f *Feed) ListPosts(ctx context.Context) ([]model.Post, error) {
	var trailer metadata.MD
	resp, err := f.rpc.ListPosts(ctx, &apiProto.ListPostsRequest{}, grpc.Trailer(&trailer))
	if err != nil {
		return nil, fromStatus("list posts", err, trailer)
	}

	posts := make([]model.Post, 0, len(resp.GetPosts()))
	for _, p := range resp.GetPosts() {
		posts = append(posts, fromPost(p))
	}
	return posts, nil
}

// CreatePost publishes a post with an optional image. When the server stored
// the text but not the image, the returned post carries the stored id
// together with the error.
func (f *Feed) CreatePost(ctx context.Context, body string, attachment *model.Attachment) (model.Post, error) {
	req := &apiProto.CreatePostRequest{Body: body}
	if attachment != nil {
		data, err := readAttachment(attachment)
		if err != nil {
			return model.Post{}, model.NewError(model.KindValidation, "create post", err)
		}
		req.Attachment = &apiProto.Attachment{Data: data, ContentType: attachment.ContentType}
	}

	var header, trailer metadata.MD
	resp, err := f.rpc.CreatePost(ctx, req, grpc.Header(&header), grpc.Trailer(&trailer))
	if err != nil {
		err = fromStatus("create post", err, trailer)
		if ids := header.Get(rpc.PostIDHeader); len(ids) > 0 && ids[0] != "" {
			f.changes.Publish(FeedChanged{PostID: ids[0]})
			return model.Post{ID: ids[0], Body: body}, err
		}
		return model.Post{}, err
	}

	post := fromPost(resp.GetPost())
	f.changes.Publish(FeedChanged{PostID: post.ID})
	return post, nil
}

// DeletePost deletes post on behalf of requester. Posts of other authors are
// rejected without contacting the server.
func (f *Feed) DeletePost(ctx context.Context, post model.Post, requester model.Principal) error {
	if requester.ID == "" || requester.ID != post.AuthorID {
		return model.Errorf(model.KindAuth, "delete post", "post %s belongs to another author", post.ID)
	}

	var trailer metadata.MD
	if _, err := f.rpc.DeletePost(ctx, &apiProto.DeletePostRequest{Id: post.ID}, grpc.Trailer(&trailer)); err != nil {
		return fromStatus("delete post", err, trailer)
	}

	f.changes.Publish(FeedChanged{PostID: post.ID, Deleted: true})
	return nil
}

func readAttachment(a *model.Attachment) ([]byte, error) {
	if a.Reader == nil {
		return nil, fmt.Errorf("attachment has no content")
	}
	r := a.Reader
	if a.Size > 0 {
		r = io.LimitReader(r, a.Size)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}
	return data, nil
}

func fromPost(p *apiProto.Post) model.Post {
	post := model.Post{
		ID:                p.GetId(),
		Body:              p.GetBody(),
		AuthorID:          p.GetAuthorId(),
		AuthorDisplayName: p.GetAuthorDisplayName(),
		AttachmentRef:     p.GetAttachmentRef(),
	}
	if ts := p.GetCreatedAt(); ts != nil {
		post.CreatedAt = ts.AsTime()
	}
	return post
}
