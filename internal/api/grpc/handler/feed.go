package handler

import (
	"bytes"
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	apiProto "github.com/dtroode/gophfeed/api/proto"
	"github.com/dtroode/gophfeed/internal/api/grpc/rpc"
	"github.com/dtroode/gophfeed/internal/logger"
	"github.com/dtroode/gophfeed/internal/model"
)

// FeedReader lists posts and loads the one being deleted.
type FeedReader interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
	GetPostRef(ctx context.Context, id string) (model.Post, error)
}

// FeedWriter creates posts for the principal of the request.
type FeedWriter interface {
	CreatePost(ctx context.Context, body string, attachment *model.Attachment) (model.Post, error)
}

// FeedEraser deletes posts on behalf of a requester.
type FeedEraser interface {
	DeletePost(ctx context.Context, post model.Post, requester model.Principal) error
}

var _ apiProto.FeedServer = (*Feed)(nil)

// Feed handles gRPC endpoints for the post feed.
type Feed struct {
	apiProto.UnimplementedFeedServer

	reader         FeedReader
	writer         FeedWriter
	eraser         FeedEraser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewFeed creates a new Feed handler.
func NewFeed(reader FeedReader, writer FeedWriter, eraser FeedEraser, contextManager model.ContextManager, logger *logger.Logger) *Feed {
	return &Feed{
		reader:         reader,
		writer:         writer,
		eraser:         eraser,
		contextManager: contextManager,
		logger:         logger,
	}
}

// ListPosts returns the whole feed, most recent first.
func (h *Feed) ListPosts(ctx context.Context, _ *apiProto.ListPostsRequest) (*apiProto.ListPostsResponse, error) {
	posts, err := h.reader.ListPosts(ctx)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	resp := &apiProto.ListPostsResponse{Posts: make([]*apiProto.Post, 0, len(posts))}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, toPost(p))
	}
	return resp, nil
}

// CreatePost creates a post with an optional image. When the image fails
// after the post was stored, the post id is sent in the response header.
func (h *Feed) CreatePost(ctx context.Context, req *apiProto.CreatePostRequest) (*apiProto.CreatePostResponse, error) {
	var attachment *model.Attachment
	if a := req.GetAttachment(); a != nil {
		attachment = &model.Attachment{
			Reader:      bytes.NewReader(a.GetData()),
			Size:        int64(len(a.GetData())),
			ContentType: a.GetContentType(),
		}
	}

	post, err := h.writer.CreatePost(ctx, req.GetBody(), attachment)
	if err != nil {
		if post.ID != "" {
			_ = grpc.SetHeader(ctx, metadata.Pairs(rpc.PostIDHeader, post.ID))
		}
		return nil, handleError(ctx, err)
	}

	return &apiProto.CreatePostResponse{Post: toPost(post)}, nil
}

// DeletePost deletes a post of the requesting principal. The post only has
// to name its author, so documents hidden from the feed can still be removed.
func (h *Feed) DeletePost(ctx context.Context, req *apiProto.DeletePostRequest) (*emptypb.Empty, error) {
	requester, ok := h.contextManager.GetPrincipalFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, model.ErrLoginRequired.Error())
	}
	id := req.GetId()
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "post id is required")
	}

	post, err := h.reader.GetPostRef(ctx, id)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	if err := h.eraser.DeletePost(ctx, post, requester); err != nil {
		h.logger.Info("Feed handler: delete rejected",
			"post_id", id,
			"user_id", requester.ID,
			"error", err.Error())
		return nil, handleError(ctx, err)
	}

	return &emptypb.Empty{}, nil
}

func toPost(p model.Post) *apiProto.Post {
	return &apiProto.Post{
		Id:                p.ID,
		Body:              p.Body,
		AuthorId:          p.AuthorID,
		AuthorDisplayName: p.AuthorDisplayName,
		CreatedAt:         timestamppb.New(p.CreatedAt),
		AttachmentRef:     p.AttachmentRef,
	}
}
